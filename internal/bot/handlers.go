package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thespread/spreadbot/internal/orders"
)

var titleCaser = cases.Title(language.English)

// Start doubles as /help. Admins get an extra block listing the admin
// commands; the commands themselves stay out of the public help text.
func (b *Bot) Start(ctx context.Context, u Update) error {
	username := u.Username
	if username == "" {
		username = u.FirstName
	}
	if err := b.M.SendText(u.ChatID, fmt.Sprintf(msgStart, username), SendOpts{RemoveKeyboard: true}); err != nil {
		return err
	}
	if b.Cfg.IsAdmin(u.UserID) {
		return b.M.SendText(u.ChatID, msgAdminHelp, SendOpts{})
	}
	return nil
}

func (b *Bot) MenuCommand(ctx context.Context, u Update) error {
	return b.M.SendText(u.ChatID, b.Menu.Weekly(), SendOpts{HTML: true, RemoveKeyboard: true})
}

func (b *Bot) Terms(ctx context.Context, u Update) error {
	return b.M.SendText(u.ChatID, msgTerms, SendOpts{HTML: true, RemoveKeyboard: true})
}

func (b *Bot) Offers(ctx context.Context, u Update) error {
	offers, err := b.Store.Offers(ctx)
	if err != nil {
		return err
	}
	if len(offers) == 0 {
		return b.M.SendText(u.ChatID, msgNoOffers, SendOpts{})
	}
	return b.M.SendText(u.ChatID,
		"These offers are active currently:\r\n\r\n• "+strings.Join(offers, "\r\n• "),
		SendOpts{})
}

// Order shows a reply keyboard holding only today's category. The vendor
// cooks one weekday menu per day, so ordering ahead is not offered.
func (b *Bot) Order(ctx context.Context, u Update) error {
	today, ok := todayCategory(b.Now())
	if !ok {
		// The operating-hours guard already rejects weekends; nothing to
		// offer if we get here anyway.
		return nil
	}
	if err := b.M.SendTyping(u.ChatID); err != nil {
		b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
	}
	return b.M.SendText(u.ChatID, msgAskCategory, SendOpts{
		Keyboard: [][]string{{weekdayLabels[today]}},
		Resize:   true,
	})
}

// CategorySelect handles free text outside any conversation. Only the
// weekday labels mean anything; everything else is ignored.
func (b *Bot) CategorySelect(ctx context.Context, u Update) error {
	for w, label := range weekdayLabels {
		if u.Text == label {
			return b.showDay(ctx, u, w)
		}
	}
	return nil
}

func (b *Bot) showDay(ctx context.Context, u Update, w orders.Weekday) error {
	day := titleCaser.String(strings.ToLower(string(w)))
	if err := b.M.SendText(u.ChatID,
		fmt.Sprintf("You have selected the %s category.", day),
		SendOpts{RemoveKeyboard: true}); err != nil {
		return err
	}
	if photo := b.Menu.Day(w).Photo; len(photo) > 0 {
		if err := b.M.SendPhoto(u.ChatID, photo, "", SendOpts{}); err != nil {
			return err
		}
	}
	return b.M.SendInline(u.ChatID, fmt.Sprintf("%s's menu is:", day), b.Menu.ItemNames(w), 2)
}

func (b *Bot) Cart(ctx context.Context, u Update) error {
	lines, err := b.Store.PendingOrder(ctx, u.UserID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return b.M.SendText(u.ChatID, msgEmptyCart, SendOpts{})
	}
	listing, err := orders.RenderCart(lines)
	if errors.Is(err, orders.ErrMissingQuantity) {
		return b.M.SendText(u.ChatID, msgMissingQuantity, SendOpts{})
	}
	if err != nil {
		return err
	}
	total, err := orders.CartTotal(lines)
	if err != nil {
		return err
	}
	if err := b.M.SendTyping(u.ChatID); err != nil {
		b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
	}
	return b.M.SendText(u.ChatID,
		fmt.Sprintf("Currently, these items are in your cart:\r\n\r\n%s\r\n\r\nTotal payable: <b>$%s</b>",
			listing, total.StringFixed(2)),
		SendOpts{HTML: true})
}

// Cancel deletes the user's PENDING rows only; PAID rows are untouched.
func (b *Bot) Cancel(ctx context.Context, u Update) error {
	lines, err := b.Store.PendingOrder(ctx, u.UserID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return b.M.SendText(u.ChatID, msgEmptyCart, SendOpts{RemoveKeyboard: true})
	}
	if err := b.Store.DeletePending(ctx, u.UserID); err != nil {
		return err
	}
	b.publish(orders.TopicOrderCancelled, orders.EventOrderCancelled, u.UserID,
		orders.OrderCancelledPayload{UserID: u.UserID})
	b.Log.Infof("ORDER", "user %d cancelled their order", u.UserID)
	return b.M.SendText(u.ChatID, msgCancelled, SendOpts{RemoveKeyboard: true})
}

// todayCategory maps the current weekday to a menu category; weekends have
// none.
func todayCategory(now time.Time) (orders.Weekday, bool) {
	switch now.Weekday() {
	case time.Monday:
		return orders.Monday, true
	case time.Tuesday:
		return orders.Tuesday, true
	case time.Wednesday:
		return orders.Wednesday, true
	case time.Thursday:
		return orders.Thursday, true
	case time.Friday:
		return orders.Friday, true
	default:
		return "", false
	}
}
