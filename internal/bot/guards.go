package bot

import (
	"context"
	"time"
)

// superAdminOnly rejects silently: no reply to the caller, server-side log
// only.
func (b *Bot) superAdminOnly(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, u Update) error {
		if !b.Cfg.IsSuperAdmin(u.UserID) {
			b.Log.Warnf("GUARD", "unauthorized superuser access denied for user %d", u.UserID)
			return nil
		}
		return next(ctx, u)
	}
}

func (b *Bot) adminOnly(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, u Update) error {
		if !b.Cfg.IsAdmin(u.UserID) {
			b.Log.Warnf("GUARD", "unauthorized admin access denied for user %d", u.UserID)
			return nil
		}
		return next(ctx, u)
	}
}

// operatingHours admits requests Monday through Friday, 08:00-20:59 local
// time. Outside that window the caller gets a closed notice and any active
// reply keyboard is cleared.
func (b *Bot) operatingHours(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, u Update) error {
		now := b.Now()
		wd := now.Weekday()
		open := wd >= time.Monday && wd <= time.Friday &&
			now.Hour() >= 8 && now.Hour() < 21
		if !open {
			b.Log.Warnf("GUARD", "out of operating time request by user %d", u.UserID)
			return b.M.SendText(u.ChatID, msgClosed, SendOpts{RemoveKeyboard: true})
		}
		return next(ctx, u)
	}
}
