package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/thespread/spreadbot/internal/bot"
	"github.com/thespread/spreadbot/internal/logger"
)

// WebhookHandler receives Bot API updates pushed by Telegram. The path
// embeds the bot token, the conventional way to keep the endpoint
// unguessable.
type WebhookHandler struct {
	Bot   *bot.Bot
	Token string
	Log   *logger.Logger
}

func (h *WebhookHandler) Register(r *chi.Mux) {
	r.Post("/webhook/{token}", h.handleUpdate)
}

func (h *WebhookHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "token") != h.Token {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var upd tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.Log.Warnf("WEBHOOK", "bad update payload: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	u, ok := bot.FromTelegram(upd)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Handled synchronously: Telegram serializes webhook delivery per chat,
	// which is exactly the one-conversation-per-user model the bot assumes.
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	h.Bot.Dispatch(ctx, u)
	w.WriteHeader(http.StatusOK)
}
