package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/thespread/spreadbot/internal/session"
)

var quantityPattern = regexp.MustCompile(`^[0-9]+$`)

// ItemSelected is the order conversation's entry point: an inline button
// press whose payload is the item name. A PENDING row is created immediately
// and the rest of the conversation fills it in.
func (b *Bot) ItemSelected(ctx context.Context, u Update) error {
	cb := u.Callback
	if err := b.Store.AddOrder(ctx, u.UserID, u.Username, u.FirstName, cb.Data); err != nil {
		return err
	}
	if err := b.M.AnswerCallback(cb.ID); err != nil {
		b.Log.Warnf("SEND", "answer callback for user %d: %v", u.UserID, err)
	}
	if err := b.M.EditText(cb.ChatID, cb.MessageID, msgAskQuantity); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateQuantity)
}

// QuantityEntered accepts a plain decimal integer. Non-numeric input is
// ignored without advancing; a value past the 64-bit range gets a "too big"
// re-prompt.
func (b *Bot) QuantityEntered(ctx context.Context, u Update) error {
	if !quantityPattern.MatchString(u.Text) {
		return nil
	}
	qty, err := strconv.ParseInt(u.Text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return b.M.SendText(u.ChatID, msgQuantityTooBig, SendOpts{})
		}
		return err
	}

	item, err := b.Store.LatestPendingItem(ctx, u.UserID)
	if err != nil {
		return err
	}
	if err := b.Store.SetQuantity(ctx, qty, u.UserID, item); err != nil {
		return err
	}
	if err := b.M.SendText(u.ChatID, fmt.Sprintf("You have ordered %d %s.", qty, item), SendOpts{}); err != nil {
		return err
	}

	keyboard := extrasKeyboard(item)
	if err := b.M.SendTyping(u.ChatID); err != nil {
		b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
	}
	if err := b.M.SendText(u.ChatID, msgAskRemarks, SendOpts{Keyboard: keyboard, Resize: true}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateRemarks)
}

// RemarksEntered closes the order conversation. Input must be 1-700
// characters; anything else is ignored without advancing. Admin remarks get
// a fixed courtesy suffix so kitchen staff recognize the order.
func (b *Bot) RemarksEntered(ctx context.Context, u Update) error {
	n := utf8.RuneCountInString(u.Text)
	if n == 0 || n > 700 {
		return nil
	}
	remarks := u.Text
	switch {
	case b.Cfg.IsSuperAdmin(u.UserID):
		remarks += superAdminRemarkSuffix
	case b.Cfg.IsAdmin(u.UserID):
		remarks += adminRemarkSuffix
	}

	item, err := b.Store.LatestPendingItem(ctx, u.UserID)
	if err != nil {
		return err
	}
	if err := b.Store.SetRemarks(ctx, remarks, u.UserID, item); err != nil {
		return err
	}
	b.Log.Infof("ORDER", "user %d added %s to their cart", u.UserID, item)

	if err := b.M.SendText(u.ChatID, msgOrderReceived, SendOpts{RemoveKeyboard: true}); err != nil {
		return err
	}
	return b.Sessions.Clear(ctx, u.UserID)
}

// extrasKeyboard builds the add-on reply keyboard for an item, one option
// per row, always ending with N/A.
func extrasKeyboard(item string) [][]string {
	var rows [][]string
	for _, extra := range itemExtras[item] {
		rows = append(rows, []string{extra})
	}
	return append(rows, []string{"N/A"})
}
