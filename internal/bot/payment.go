package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/session"
)

var (
	contactPattern = regexp.MustCompile(`^[0-9]{8}$`)

	// Coarse shape check only; the allowed set itself is DB-driven and
	// re-validated against it afterwards.
	timePattern = regexp.MustCompile(`[0-2][0-9]:[0134][05]`)
)

// PayEntry starts the payment conversation. An empty cart aborts immediately.
func (b *Bot) PayEntry(ctx context.Context, u Update) error {
	lines, err := b.Store.PendingOrder(ctx, u.UserID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		if err := b.M.SendTyping(u.ChatID); err != nil {
			b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
		}
		return b.M.SendText(u.ChatID, msgEmptyCart, SendOpts{RemoveKeyboard: true})
	}
	if err := b.M.SendText(u.ChatID, msgAskFullName, SendOpts{}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateFullName)
}

// FullNameEntered accepts any text as the name and stamps it onto every
// pending row of the user.
func (b *Bot) FullNameEntered(ctx context.Context, u Update) error {
	if u.Text == "" {
		return nil
	}
	if err := b.Store.SetFullName(ctx, u.Text, u.UserID); err != nil {
		return err
	}
	if err := b.M.SendTyping(u.ChatID); err != nil {
		b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
	}
	if err := b.M.SendText(u.ChatID, msgAskContact, SendOpts{RemoveKeyboard: true}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateContactNumber)
}

// ContactNumberEntered requires exactly 8 digits; anything else re-prompts
// without transitioning.
func (b *Bot) ContactNumberEntered(ctx context.Context, u Update) error {
	if !contactPattern.MatchString(u.Text) {
		return b.M.SendText(u.ChatID, msgAskContact, SendOpts{})
	}
	number, err := strconv.ParseInt(u.Text, 10, 64)
	if err != nil {
		return err
	}
	if err := b.Store.SetContactNumber(ctx, number, u.UserID); err != nil {
		return err
	}
	times, err := b.Store.CollectionTimes(ctx)
	if err != nil {
		return err
	}
	if err := b.M.SendTyping(u.ChatID); err != nil {
		b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
	}
	if err := b.M.SendText(u.ChatID, msgAskTime, SendOpts{Keyboard: timeKeyboard(times)}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateCollectionTime)
}

// CollectionTimeEntered re-validates against the configured time set even
// though the shape regex already constrains the input: the set is DB-driven
// and the regex is only a coarse filter.
func (b *Bot) CollectionTimeEntered(ctx context.Context, u Update) error {
	times, err := b.Store.CollectionTimes(ctx)
	if err != nil {
		return err
	}
	if !timePattern.MatchString(u.Text) || !containsString(times, u.Text) {
		if err := b.M.SendTyping(u.ChatID); err != nil {
			b.Log.Warnf("SEND", "typing action for user %d: %v", u.UserID, err)
		}
		return b.M.SendText(u.ChatID, msgInvalidTime, SendOpts{Keyboard: timeKeyboard(times)})
	}
	if err := b.Store.SetCollectionTime(ctx, u.Text, u.UserID); err != nil {
		return err
	}
	if err := b.M.SendText(u.ChatID,
		fmt.Sprintf("You have selected %s as your time of collection.", u.Text),
		SendOpts{RemoveKeyboard: true}); err != nil {
		return err
	}
	keyboard := make([][]string, 0, len(deliveryLocations)+1)
	for _, loc := range deliveryLocations {
		keyboard = append(keyboard, []string{loc})
	}
	keyboard = append(keyboard, []string{"N/A"})
	if err := b.M.SendText(u.ChatID, msgAskLocation, SendOpts{Keyboard: keyboard, Resize: true}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateLocation)
}

// LocationEntered accepts only the four configured delivery points; N/A and
// free text re-prompt. On a match the invoice, QR code and receipt
// instructions go out.
func (b *Bot) LocationEntered(ctx context.Context, u Update) error {
	if !containsString(deliveryLocations, u.Text) {
		return b.M.SendText(u.ChatID, msgAskLocation, SendOpts{})
	}
	if err := b.Store.SetLocation(ctx, u.Text, u.UserID); err != nil {
		return err
	}

	lines, err := b.Store.PendingOrder(ctx, u.UserID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		if err := b.M.SendText(u.ChatID, msgEmptyCart, SendOpts{}); err != nil {
			return err
		}
		return b.Sessions.Clear(ctx, u.UserID)
	}
	listing, err := orders.RenderCart(lines)
	if errors.Is(err, orders.ErrMissingQuantity) {
		if err := b.M.SendText(u.ChatID, msgMissingQuantity, SendOpts{}); err != nil {
			return err
		}
		return b.Sessions.Clear(ctx, u.UserID)
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
	if err := b.M.SendText(u.ChatID,
		fmt.Sprintf(msgInvoice, listing, total.StringFixed(2)),
		SendOpts{HTML: true, RemoveKeyboard: true}); err != nil {
		return err
	}
	if err := b.M.SendPhoto(u.ChatID, b.QRImage, "", SendOpts{}); err != nil {
		return err
	}
	if err := b.M.SendText(u.ChatID, msgAskReceipt, SendOpts{}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateReceiptImage)
}

// ReceiptEntered is the terminal payment state. Only photo attachments are
// accepted; the image is stored on every pending row and the whole cart
// flips to PAID in one call.
func (b *Bot) ReceiptEntered(ctx context.Context, u Update) error {
	if u.PhotoFileID == "" {
		return nil
	}
	image, err := b.M.FetchPhoto(u.PhotoFileID)
	if err != nil {
		return fmt.Errorf("fetch receipt: %w", err)
	}

	// Snapshot the cart before the status flip for the event payload.
	lines, err := b.Store.PendingOrder(ctx, u.UserID)
	if err != nil {
		return err
	}

	if err := b.Store.SetReceiptImage(ctx, image, u.UserID); err != nil {
		return err
	}
	if err := b.Store.MarkAllPaid(ctx, u.UserID); err != nil {
		return err
	}

	b.publishOrderPaid(u.UserID, lines)
	b.Log.Infof("ORDER", "user %d has paid for their order", u.UserID)

	if err := b.M.SendText(u.ChatID, msgPaid, SendOpts{}); err != nil {
		return err
	}
	return b.Sessions.Clear(ctx, u.UserID)
}

func (b *Bot) publishOrderPaid(userID int64, lines []orders.CartLine) {
	payload := orders.OrderPaidPayload{UserID: userID}
	for _, l := range lines {
		if l.Quantity == nil {
			continue
		}
		payload.Items = append(payload.Items, orders.PaidItem{Item: l.Item, Quantity: *l.Quantity})
	}
	if total, err := orders.CartTotal(lines); err == nil {
		payload.Total = total.StringFixed(2)
	}
	b.publish(orders.TopicOrderPaid, orders.EventOrderPaid, userID, payload)
}

func timeKeyboard(times []string) [][]string {
	rows := make([][]string, 0, len(times))
	for _, t := range times {
		rows = append(rows, []string{t})
	}
	return rows
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
