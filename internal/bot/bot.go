// Package bot is the conversation engine and command router of the ordering
// assistant. Conversation state lives in a session store keyed by user id;
// the accumulated order data lives in the order repository, so the rows are
// the real session and a lost state pointer only costs the "next input" hint.
package bot

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/thespread/spreadbot/internal/config"
	"github.com/thespread/spreadbot/internal/logger"
	"github.com/thespread/spreadbot/internal/menu"
	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/session"
)

// HandlerFunc handles one incoming update. Guards wrap these.
type HandlerFunc func(ctx context.Context, u Update) error

// Publisher is the slice of the kafka producer the bot needs. Nil disables
// event publishing (tests).
type Publisher interface {
	Publish(topic string, key, value []byte, headers ...kafkago.Header)
}

type Bot struct {
	M        Messenger
	Store    orders.Store
	Sessions session.Store
	Menu     *menu.Snapshot
	Events   Publisher
	Log      *logger.Logger
	Cfg      config.Config
	QRImage  []byte

	// Now is the clock used by the operating-hours guard, injectable in
	// tests. Defaults to time.Now.
	Now func() time.Time

	commands map[string]HandlerFunc
	states   map[session.State]HandlerFunc
}

func New(m Messenger, store orders.Store, sessions session.Store, snap *menu.Snapshot,
	events Publisher, log *logger.Logger, cfg config.Config) *Bot {
	b := &Bot{
		M:        m,
		Store:    store,
		Sessions: sessions,
		Menu:     snap,
		Events:   events,
		Log:      log,
		Cfg:      cfg,
		Now:      time.Now,
	}

	hours := b.operatingHours
	admin := b.adminOnly
	super := b.superAdminOnly

	b.commands = map[string]HandlerFunc{
		"start":  b.Start,
		"help":   b.Start,
		"menu":   b.MenuCommand,
		"terms":  b.Terms,
		"offers": hours(b.Offers),
		"order":  hours(b.Order),
		"cart":   hours(b.Cart),
		"pay":    hours(b.PayEntry),
		"cancel": b.Cancel,

		// Deliberately absent from /start's help text, but registered.
		// The guards do the real gating.
		"purge":          admin(b.Purge),
		"vieworderlist":  admin(b.ViewOrderList),
		"editmenu":       admin(b.EditMenuEntry),
		"deletepaiduser": admin(b.DeletePaidUser),
		"root":           super(b.Root),
	}

	b.states = map[session.State]HandlerFunc{
		session.StateQuantity:       hours(b.QuantityEntered),
		session.StateRemarks:        hours(b.RemarksEntered),
		session.StateFullName:       hours(b.FullNameEntered),
		session.StateContactNumber:  hours(b.ContactNumberEntered),
		session.StateCollectionTime: hours(b.CollectionTimeEntered),
		session.StateLocation:       hours(b.LocationEntered),
		session.StateReceiptImage:   hours(b.ReceiptEntered),
		session.StateEditMenu:       admin(b.MenuEditorInput),
	}

	return b
}

// Dispatch routes one update. Errors are logged and the request abandoned;
// there is no retry and the user sees no reply for a failed turn.
func (b *Bot) Dispatch(ctx context.Context, u Update) {
	var err error
	switch {
	case u.Callback != nil:
		err = b.handleCallback(ctx, u)
	case u.Command != "":
		err = b.handleCommand(ctx, u)
	default:
		err = b.handleMessage(ctx, u)
	}
	if err != nil {
		b.Log.Errorf("HANDLER", "user %d: %v", u.UserID, err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, u Update) error {
	_, active, err := b.Sessions.Get(ctx, u.UserID)
	if err != nil {
		return err
	}
	if active {
		// A mid-conversation button press is not this conversation's
		// input; just stop the client spinner.
		return b.M.AnswerCallback(u.Callback.ID)
	}
	return b.operatingHours(b.ItemSelected)(ctx, u)
}

func (b *Bot) handleCommand(ctx context.Context, u Update) error {
	st, active, err := b.Sessions.Get(ctx, u.UserID)
	if err != nil {
		return err
	}
	if active {
		if u.Command == "cancel" {
			if err := b.Sessions.Clear(ctx, u.UserID); err != nil {
				return err
			}
			return b.Cancel(ctx, u)
		}
		if _, known := b.commands[u.Command]; known {
			return b.M.SendText(u.ChatID, msgCompletePrevious, SendOpts{})
		}
		// Unrecognized commands flow into the state handler as text.
		return b.dispatchState(ctx, st, u)
	}
	h, known := b.commands[u.Command]
	if !known {
		return nil
	}
	return h(ctx, u)
}

func (b *Bot) handleMessage(ctx context.Context, u Update) error {
	st, active, err := b.Sessions.Get(ctx, u.UserID)
	if err != nil {
		return err
	}
	if active {
		return b.dispatchState(ctx, st, u)
	}
	if u.Text != "" {
		return b.CategorySelect(ctx, u)
	}
	return nil
}

func (b *Bot) dispatchState(ctx context.Context, st session.State, u Update) error {
	h, ok := b.states[st]
	if !ok {
		// Unknown state, e.g. left over from an older build. Drop it so the
		// user is not stuck.
		b.Log.Warnf("SESSION", "clearing unknown state %q for user %d", st, u.UserID)
		return b.Sessions.Clear(ctx, u.UserID)
	}
	return h(ctx, u)
}
