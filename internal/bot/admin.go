package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/session"
)

// Root is the super-admin easter egg.
func (b *Bot) Root(ctx context.Context, u Update) error {
	return b.M.SendText(u.ChatID, msgRoot, SendOpts{})
}

// Purge deletes every order row, paid or not. Staff run it daily.
func (b *Bot) Purge(ctx context.Context, u Update) error {
	if err := b.Store.Purge(ctx); err != nil {
		return err
	}
	b.publish(orders.TopicOrderPurged, orders.EventOrderPurged, u.UserID,
		orders.OrderPurgedPayload{PurgedBy: u.UserID})
	b.Log.Infof("ADMIN", "user %d purged the order list", u.UserID)
	return b.M.SendText(u.ChatID, msgPurged, SendOpts{})
}

// ViewOrderList sends one receipt photo per paid row, sorted by collection
// time, captioned with everything staff need to hand the order over.
func (b *Bot) ViewOrderList(ctx context.Context, u Update) error {
	paid, err := b.Store.PaidOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range paid {
		caption := fmt.Sprintf("%s - %d, %s: %s x%s at %s. %s",
			o.CollectionTime, o.UserID, formatInt64Ptr(o.ContactNumber),
			o.Item, formatInt64Ptr(o.Quantity), o.Location, o.Remarks)
		if err := b.M.SendPhoto(u.ChatID, o.ReceiptImage, caption,
			SendOpts{Silent: true, RemoveKeyboard: true}); err != nil {
			return err
		}
	}
	return nil
}

// EditMenuEntry starts the admin menu-edit conversation.
func (b *Bot) EditMenuEntry(ctx context.Context, u Update) error {
	if err := b.M.SendText(u.ChatID, msgEditMenuPrompt, SendOpts{}); err != nil {
		return err
	}
	return b.Sessions.Set(ctx, u.UserID, session.StateEditMenu)
}

// MenuEditorInput expects a photo captioned "<category> - <name> - <price>".
// The update matches by category: each category holds one representative
// row, and this overwrites its name, price and photo. The in-memory menu
// snapshot stays stale until the process restarts.
func (b *Bot) MenuEditorInput(ctx context.Context, u Update) error {
	if u.PhotoFileID == "" {
		return nil
	}
	parts := strings.Split(u.Caption, " - ")
	if len(parts) != 3 {
		return b.M.SendText(u.ChatID, msgEditMenuBadFormat, SendOpts{})
	}
	price, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil || price.IsNegative() {
		return b.M.SendText(u.ChatID, msgEditMenuBadFormat, SendOpts{})
	}
	image, err := b.M.FetchPhoto(u.PhotoFileID)
	if err != nil {
		return fmt.Errorf("fetch menu photo: %w", err)
	}

	category := orders.Weekday(strings.ToUpper(strings.TrimSpace(parts[0])))
	name := titleCaser.String(strings.ToLower(strings.TrimSpace(parts[1])))
	if err := b.Store.UpdateMenuItem(ctx, name, image, price.Round(2), category); err != nil {
		return err
	}

	b.publish(orders.TopicMenuUpdated, orders.EventMenuUpdated, u.UserID,
		orders.MenuUpdatedPayload{
			Category: string(category),
			Name:     name,
			Price:    price.Round(2).StringFixed(2),
		})
	b.Log.Infof("ADMIN", "user %d updated the %s menu", u.UserID, category)

	dayName := titleCaser.String(strings.ToLower(string(category)))
	if err := b.M.SendText(u.ChatID,
		fmt.Sprintf("%s's menu has been updated!", dayName), SendOpts{}); err != nil {
		return err
	}
	return b.Sessions.Clear(ctx, u.UserID)
}

// DeletePaidUser deletes the paid rows of one user. Succeeds, with the same
// message, even when that user has no paid rows.
func (b *Bot) DeletePaidUser(ctx context.Context, u Update) error {
	if len(u.Args) == 0 {
		return b.M.SendText(u.ChatID, msgDeletePaidTemplate, SendOpts{})
	}
	userID, err := strconv.ParseInt(u.Args[0], 10, 64)
	if err != nil {
		return b.M.SendText(u.ChatID, msgDeletePaidBadID, SendOpts{})
	}
	if err := b.Store.DeletePaid(ctx, userID); err != nil {
		return err
	}
	return b.M.SendText(u.ChatID,
		fmt.Sprintf("Paid orders from user %d has been deleted, if any.", userID),
		SendOpts{})
}

func formatInt64Ptr(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
