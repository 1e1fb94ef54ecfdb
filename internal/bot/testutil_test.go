package bot

import (
	"context"
	"fmt"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/thespread/spreadbot/internal/config"
	"github.com/thespread/spreadbot/internal/logger"
	"github.com/thespread/spreadbot/internal/menu"
	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/session"
)

const (
	superID    int64 = 1
	adminID    int64 = 99
	customerID int64 = 7
)

// openingTime is a Wednesday inside operating hours.
var openingTime = time.Date(2026, time.August, 26, 10, 0, 0, 0, time.UTC)

type sentText struct {
	ChatID int64
	Text   string
	Opts   SendOpts
}

type sentPhoto struct {
	ChatID  int64
	Photo   []byte
	Caption string
	Opts    SendOpts
}

type sentInline struct {
	ChatID int64
	Text   string
	Labels []string
	Cols   int
}

type editedText struct {
	ChatID    int64
	MessageID int
	Text      string
}

// fakeMessenger records every outbound call and serves photo fetches from an
// in-memory file map.
type fakeMessenger struct {
	Texts    []sentText
	Photos   []sentPhoto
	Inlines  []sentInline
	Edits    []editedText
	Answered []string
	Files    map[string][]byte
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{Files: make(map[string][]byte)}
}

func (m *fakeMessenger) SendText(chatID int64, text string, opts SendOpts) error {
	m.Texts = append(m.Texts, sentText{ChatID: chatID, Text: text, Opts: opts})
	return nil
}

func (m *fakeMessenger) SendPhoto(chatID int64, photo []byte, caption string, opts SendOpts) error {
	m.Photos = append(m.Photos, sentPhoto{ChatID: chatID, Photo: photo, Caption: caption, Opts: opts})
	return nil
}

func (m *fakeMessenger) SendInline(chatID int64, text string, labels []string, cols int) error {
	m.Inlines = append(m.Inlines, sentInline{ChatID: chatID, Text: text, Labels: labels, Cols: cols})
	return nil
}

func (m *fakeMessenger) EditText(chatID int64, messageID int, text string) error {
	m.Edits = append(m.Edits, editedText{ChatID: chatID, MessageID: messageID, Text: text})
	return nil
}

func (m *fakeMessenger) AnswerCallback(id string) error {
	m.Answered = append(m.Answered, id)
	return nil
}

func (m *fakeMessenger) SendTyping(int64) error { return nil }

func (m *fakeMessenger) FetchPhoto(fileID string) ([]byte, error) {
	data, ok := m.Files[fileID]
	if !ok {
		return nil, fmt.Errorf("unknown file id %q", fileID)
	}
	return data, nil
}

func (m *fakeMessenger) lastText(t *testing.T) sentText {
	t.Helper()
	require.NotEmpty(t, m.Texts, "expected at least one text message")
	return m.Texts[len(m.Texts)-1]
}

type published struct {
	Topic string
	Key   []byte
	Value []byte
}

type fakePublisher struct {
	Events []published
}

func (p *fakePublisher) Publish(topic string, key, value []byte, _ ...kafkago.Header) {
	p.Events = append(p.Events, published{Topic: topic, Key: key, Value: value})
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTestBot wires a bot over in-memory stores with a clock frozen inside
// operating hours. The seeded menu covers Wednesday, the frozen weekday.
func newTestBot(t *testing.T) (*Bot, *fakeMessenger, *orders.MemoryStore, *session.MemoryStore, *fakePublisher) {
	t.Helper()

	store := orders.NewMemoryStore()
	store.SeedMenu(
		orders.MenuItem{Name: "Chicken Rice", Price: price("5.00"), Category: orders.Wednesday},
		orders.MenuItem{Name: "Double-Decker White Sandwich", Price: price("6.00"), Category: orders.Wednesday},
		orders.MenuItem{Name: "Laksa", Price: price("4.50"), Category: orders.Monday},
	)
	store.SeedCollectionTimes("12:00", "12:05", "12:10")

	snap, err := menu.Load(context.Background(), store)
	require.NoError(t, err)

	m := newFakeMessenger()
	sessions := session.NewMemoryStore()
	events := &fakePublisher{}
	cfg := config.Config{
		SuperAdmins: []int64{superID},
		Admins:      []int64{superID, adminID},
		ServiceName: "spread-bot",
	}

	b := New(m, store, sessions, snap, events, logger.New(), cfg)
	b.QRImage = []byte("qr")
	b.Now = func() time.Time { return openingTime }
	return b, m, store, sessions, events
}

func command(userID int64, cmd string, args ...string) Update {
	return Update{
		UserID:    userID,
		ChatID:    userID,
		Username:  "tester",
		FirstName: "Tester",
		Command:   cmd,
		Args:      args,
		Text:      "/" + cmd,
	}
}

func message(userID int64, text string) Update {
	return Update{
		UserID:    userID,
		ChatID:    userID,
		Username:  "tester",
		FirstName: "Tester",
		Text:      text,
	}
}

// seedPaidOrder inserts one fully filled paid row for userID.
func seedPaidOrder(t *testing.T, store *orders.MemoryStore, userID int64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.AddOrder(ctx, userID, "tester", "Tester", "Chicken Rice"))
	require.NoError(t, store.SetQuantity(ctx, 2, userID, "Chicken Rice"))
	require.NoError(t, store.SetRemarks(ctx, "N/A", userID, "Chicken Rice"))
	require.NoError(t, store.SetFullName(ctx, "Tester Tan", userID))
	require.NoError(t, store.SetContactNumber(ctx, 91234567, userID))
	require.NoError(t, store.SetCollectionTime(ctx, "12:05", userID))
	require.NoError(t, store.SetLocation(ctx, "BIZ 2", userID))
	require.NoError(t, store.SetReceiptImage(ctx, []byte("receipt"), userID))
	require.NoError(t, store.MarkAllPaid(ctx, userID))
}

func mustState(t *testing.T, sessions *session.MemoryStore, userID int64) session.State {
	t.Helper()
	st, ok, err := sessions.Get(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok, "expected an active session for user %d", userID)
	return st
}

func noState(t *testing.T, sessions *session.MemoryStore, userID int64) {
	t.Helper()
	_, ok, err := sessions.Get(context.Background(), userID)
	require.NoError(t, err)
	require.False(t, ok, "expected no active session for user %d", userID)
}
