package bot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/session"
)

func TestPurgeEmptiesOrderList(t *testing.T) {
	b, m, store, _, events := newTestBot(t)
	ctx := context.Background()

	seedPaidOrder(t, store, customerID)
	require.NoError(t, store.AddOrder(ctx, 8, "bob", "Bob", "Chicken Rice"))

	b.Dispatch(ctx, command(adminID, "purge"))

	assert.Empty(t, store.Rows())
	assert.Equal(t, msgPurged, m.lastText(t).Text)

	require.NotEmpty(t, events.Events)
	last := events.Events[len(events.Events)-1]
	assert.Equal(t, orders.TopicOrderPurged, last.Topic)
	var env orders.Envelope
	require.NoError(t, json.Unmarshal(last.Value, &env))
	assert.Equal(t, orders.EventOrderPurged, env.EventType)
}

func TestViewOrderListSendsReceiptPerPaidRow(t *testing.T) {
	b, m, store, _, _ := newTestBot(t)
	ctx := context.Background()

	seedPaidOrder(t, store, customerID)
	require.NoError(t, store.AddOrder(ctx, 8, "bob", "Bob", "Chicken Rice"))

	b.Dispatch(ctx, command(adminID, "vieworderlist"))

	require.Len(t, m.Photos, 1, "pending rows must not be listed")
	p := m.Photos[0]
	assert.Equal(t, []byte("receipt"), p.Photo)
	assert.Equal(t, "12:05 - 7, 91234567: Chicken Rice x2 at BIZ 2. N/A", p.Caption)
	assert.True(t, p.Opts.Silent)
}

func TestEditMenuConversation(t *testing.T) {
	b, m, store, sessions, events := newTestBot(t)
	ctx := context.Background()
	m.Files["menu-photo"] = []byte("new dish photo")

	b.Dispatch(ctx, command(adminID, "editmenu"))
	assert.Equal(t, msgEditMenuPrompt, m.lastText(t).Text)
	assert.Equal(t, session.StateEditMenu, mustState(t, sessions, adminID))

	upd := photoMessage(adminID, "menu-photo")
	upd.Caption = "wednesday - chicken rice deluxe - 5.5"
	b.Dispatch(ctx, upd)

	items, err := store.Menu(ctx, orders.Wednesday)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.Equal(t, "Chicken Rice Deluxe", it.Name)
		assert.Equal(t, "5.50", it.Price.StringFixed(2))
		assert.Equal(t, []byte("new dish photo"), it.Image)
	}

	assert.Equal(t, "Wednesday's menu has been updated!", m.lastText(t).Text)
	noState(t, sessions, adminID)

	require.NotEmpty(t, events.Events)
	last := events.Events[len(events.Events)-1]
	assert.Equal(t, orders.TopicMenuUpdated, last.Topic)
	var env orders.Envelope
	require.NoError(t, json.Unmarshal(last.Value, &env))
	var payload orders.MenuUpdatedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "WEDNESDAY", payload.Category)
	assert.Equal(t, "Chicken Rice Deluxe", payload.Name)
	assert.Equal(t, "5.50", payload.Price)
}

func TestEditMenuRejectsMalformedCaptions(t *testing.T) {
	tests := []struct {
		name    string
		caption string
	}{
		{"too few parts", "wednesday - 5.50"},
		{"price not a number", "wednesday - chicken rice - cheap"},
		{"negative price", "wednesday - chicken rice - -5.50"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, m, _, sessions, _ := newTestBot(t)
			ctx := context.Background()
			m.Files["menu-photo"] = []byte("photo")

			b.Dispatch(ctx, command(adminID, "editmenu"))
			upd := photoMessage(adminID, "menu-photo")
			upd.Caption = tc.caption
			b.Dispatch(ctx, upd)

			assert.Equal(t, msgEditMenuBadFormat, m.lastText(t).Text)
			assert.Equal(t, session.StateEditMenu, mustState(t, sessions, adminID))
		})
	}
}

func TestEditMenuIgnoresTextInput(t *testing.T) {
	b, m, _, sessions, _ := newTestBot(t)
	ctx := context.Background()

	b.Dispatch(ctx, command(adminID, "editmenu"))
	m.Texts = nil
	b.Dispatch(ctx, Update{UserID: adminID, ChatID: adminID, Text: "wednesday - chicken rice - 5.50"})

	assert.Empty(t, m.Texts)
	assert.Equal(t, session.StateEditMenu, mustState(t, sessions, adminID))
}

func TestDeletePaidUserArgumentValidation(t *testing.T) {
	b, m, _, _, _ := newTestBot(t)
	ctx := context.Background()

	b.Dispatch(ctx, command(adminID, "deletepaiduser"))
	assert.Equal(t, msgDeletePaidTemplate, m.lastText(t).Text)

	b.Dispatch(ctx, command(adminID, "deletepaiduser", "not-a-number"))
	assert.Equal(t, msgDeletePaidBadID, m.lastText(t).Text)
}

func TestDeletePaidUserIsIdempotent(t *testing.T) {
	b, m, store, _, _ := newTestBot(t)
	ctx := context.Background()

	seedPaidOrder(t, store, customerID)

	b.Dispatch(ctx, command(adminID, "deletepaiduser", "7"))
	assert.Empty(t, store.Rows())
	assert.Equal(t, "Paid orders from user 7 has been deleted, if any.", m.lastText(t).Text)

	// Same command again, same reply, no rows to delete.
	b.Dispatch(ctx, command(adminID, "deletepaiduser", "7"))
	assert.Equal(t, "Paid orders from user 7 has been deleted, if any.", m.lastText(t).Text)
}

func TestEditMenuDeniedForCustomers(t *testing.T) {
	b, m, _, sessions, _ := newTestBot(t)

	b.Dispatch(context.Background(), command(customerID, "editmenu"))

	assert.Empty(t, m.Texts)
	noState(t, sessions, customerID)
}
