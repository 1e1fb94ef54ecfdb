package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thespread/spreadbot/internal/bot"
	"github.com/thespread/spreadbot/internal/config"
	"github.com/thespread/spreadbot/internal/logger"
	"github.com/thespread/spreadbot/internal/menu"
	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/session"
)

// recordingMessenger captures SendText calls; everything else is a no-op.
type recordingMessenger struct {
	texts []string
}

func (m *recordingMessenger) SendText(_ int64, text string, _ bot.SendOpts) error {
	m.texts = append(m.texts, text)
	return nil
}
func (m *recordingMessenger) SendPhoto(int64, []byte, string, bot.SendOpts) error { return nil }
func (m *recordingMessenger) SendInline(int64, string, []string, int) error       { return nil }
func (m *recordingMessenger) EditText(int64, int, string) error                   { return nil }
func (m *recordingMessenger) AnswerCallback(string) error                         { return nil }
func (m *recordingMessenger) SendTyping(int64) error                              { return nil }
func (m *recordingMessenger) FetchPhoto(string) ([]byte, error)                   { return nil, nil }

func newTestHandler(t *testing.T) (*WebhookHandler, *recordingMessenger) {
	t.Helper()
	store := orders.NewMemoryStore()
	snap, err := menu.Load(context.Background(), store)
	require.NoError(t, err)

	m := &recordingMessenger{}
	b := bot.New(m, store, session.NewMemoryStore(), snap, nil, logger.New(), config.Config{})
	return &WebhookHandler{Bot: b, Token: "secret-token", Log: logger.New()}, m
}

func serve(h *WebhookHandler, path, body string) *httptest.ResponseRecorder {
	r := NewRouter()
	h.Register(r)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWebhookRejectsWrongToken(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, "/webhook/wrong", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := serve(h, "/webhook/secret-token", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookAcceptsUnhandledUpdateKinds(t *testing.T) {
	h, m := newTestHandler(t)
	rec := serve(h, "/webhook/secret-token", `{"update_id": 1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, m.texts)
}

func TestWebhookDispatchesMessages(t *testing.T) {
	h, m := newTestHandler(t)
	body := `{
		"update_id": 2,
		"message": {
			"message_id": 10,
			"text": "/start",
			"entities": [{"type": "bot_command", "offset": 0, "length": 6}],
			"from": {"id": 7, "first_name": "Alice", "username": "alice"},
			"chat": {"id": 7}
		}
	}`
	rec := serve(h, "/webhook/secret-token", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, m.texts, 1)
	assert.Contains(t, m.texts[0], "Hi @alice")
}

func TestHealthz(t *testing.T) {
	r := NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
