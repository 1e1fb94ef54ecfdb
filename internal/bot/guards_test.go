package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperatingHoursRejectsWeekend(t *testing.T) {
	b, m, _, _, _ := newTestBot(t)
	b.Now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC) // Saturday
	}

	b.Dispatch(context.Background(), command(customerID, "order"))

	last := m.lastText(t)
	assert.Equal(t, msgClosed, last.Text)
	assert.True(t, last.Opts.RemoveKeyboard)
}

func TestOperatingHoursRejectsLateEvening(t *testing.T) {
	b, m, _, _, _ := newTestBot(t)
	b.Now = func() time.Time {
		return time.Date(2026, time.August, 26, 21, 0, 0, 0, time.UTC)
	}

	b.Dispatch(context.Background(), command(customerID, "offers"))

	assert.Equal(t, msgClosed, m.lastText(t).Text)
}

func TestOperatingHoursRejectsEarlyMorning(t *testing.T) {
	b, m, _, _, _ := newTestBot(t)
	b.Now = func() time.Time {
		return time.Date(2026, time.August, 26, 7, 59, 0, 0, time.UTC)
	}

	b.Dispatch(context.Background(), command(customerID, "cart"))

	assert.Equal(t, msgClosed, m.lastText(t).Text)
}

func TestOperatingHoursAdmitsWeekdayDaytime(t *testing.T) {
	b, m, _, _, _ := newTestBot(t)

	b.Dispatch(context.Background(), command(customerID, "order"))

	last := m.lastText(t)
	assert.NotEqual(t, msgClosed, last.Text)
	assert.Equal(t, msgAskCategory, last.Text)
	assert.Equal(t, [][]string{{"😕 Wednesday"}}, last.Opts.Keyboard)
}

func TestAdminGuardDeniesSilently(t *testing.T) {
	b, m, store, _, _ := newTestBot(t)
	seedPaidOrder(t, store, customerID)

	b.Dispatch(context.Background(), command(customerID, "purge"))

	assert.Empty(t, m.Texts, "denial must not produce a reply")
	assert.NotEmpty(t, store.Rows(), "order list must survive the denied purge")
}

func TestSuperAdminGuardDeniesAdmins(t *testing.T) {
	b, m, _, _, _ := newTestBot(t)

	b.Dispatch(context.Background(), command(adminID, "root"))
	assert.Empty(t, m.Texts)

	b.Dispatch(context.Background(), command(superID, "root"))
	assert.Equal(t, msgRoot, m.lastText(t).Text)
}
