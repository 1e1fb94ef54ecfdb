package bot

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram implements Messenger over the Bot API.
type Telegram struct {
	api  *tgbotapi.BotAPI
	http *http.Client
}

func NewTelegram(api *tgbotapi.BotAPI) *Telegram {
	return &Telegram{api: api, http: http.DefaultClient}
}

func (t *Telegram) SendText(chatID int64, text string, opts SendOpts) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if opts.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	msg.DisableNotification = opts.Silent
	msg.ReplyMarkup = replyMarkup(opts)
	_, err := t.api.Send(msg)
	return err
}

func (t *Telegram) SendPhoto(chatID int64, photo []byte, caption string, opts SendOpts) error {
	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "photo.jpg", Bytes: photo})
	msg.Caption = caption
	msg.DisableNotification = opts.Silent
	msg.ReplyMarkup = replyMarkup(opts)
	_, err := t.api.Send(msg)
	return err
}

func (t *Telegram) SendInline(chatID int64, text string, labels []string, cols int) error {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, label := range labels {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, label))
		if len(row) == cols {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err := t.api.Send(msg)
	return err
}

func (t *Telegram) EditText(chatID int64, messageID int, text string) error {
	_, err := t.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return err
}

func (t *Telegram) AnswerCallback(id string) error {
	_, err := t.api.Request(tgbotapi.NewCallback(id, ""))
	return err
}

func (t *Telegram) SendTyping(chatID int64) error {
	_, err := t.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

// FetchPhoto downloads a photo's bytes by its file id.
func (t *Telegram) FetchPhoto(fileID string) ([]byte, error) {
	url, err := t.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file %s: %w", fileID, err)
	}
	resp, err := t.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file %s: status %d", fileID, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// replyMarkup maps SendOpts onto the wire keyboard types. Telegram rejects a
// message carrying both a keyboard and a removal, so removal wins only when
// no keyboard is given.
func replyMarkup(opts SendOpts) any {
	if len(opts.Keyboard) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(opts.Keyboard))
		for _, r := range opts.Keyboard {
			row := make([]tgbotapi.KeyboardButton, 0, len(r))
			for _, label := range r {
				row = append(row, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, row)
		}
		kb := tgbotapi.NewReplyKeyboard(rows...)
		kb.ResizeKeyboard = opts.Resize
		return kb
	}
	if opts.RemoveKeyboard {
		return tgbotapi.NewRemoveKeyboard(false)
	}
	return nil
}

// FromTelegram converts a raw Bot API update into the dispatcher's Update.
// The second return is false for update kinds the bot does not handle.
func FromTelegram(upd tgbotapi.Update) (Update, bool) {
	if cb := upd.CallbackQuery; cb != nil && cb.Message != nil {
		return Update{
			UserID:    cb.From.ID,
			ChatID:    cb.Message.Chat.ID,
			Username:  cb.From.UserName,
			FirstName: cb.From.FirstName,
			Callback: &Callback{
				ID:        cb.ID,
				Data:      cb.Data,
				ChatID:    cb.Message.Chat.ID,
				MessageID: cb.Message.MessageID,
			},
		}, true
	}
	if m := upd.Message; m != nil && m.From != nil {
		u := Update{
			UserID:    m.From.ID,
			ChatID:    m.Chat.ID,
			Username:  m.From.UserName,
			FirstName: m.From.FirstName,
			Text:      m.Text,
			Caption:   m.Caption,
		}
		if m.IsCommand() {
			u.Command = m.Command()
			u.Args = strings.Fields(m.CommandArguments())
		}
		if len(m.Photo) > 0 {
			u.PhotoFileID = m.Photo[len(m.Photo)-1].FileID
		}
		return u, true
	}
	return Update{}, false
}
