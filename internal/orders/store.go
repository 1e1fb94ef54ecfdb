package orders

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the order repository consumed by the bot. Two implementations
// exist: PgStore backed by Postgres, and MemoryStore for tests.
//
// Write scoping mirrors the conversation's semantics: SetQuantity and
// SetRemarks target the most recently inserted pending row of (user, item),
// while the cart-level setters broadcast to every pending row of the user.
// Each call commits independently; there is no transaction spanning a state
// transition, so a crash can leave a row partially filled. That is accepted
// because every field is re-enterable by re-running its conversation state.
type Store interface {
	// Menu reference data.
	Menu(ctx context.Context, category Weekday) ([]MenuItem, error)
	CategoryPhoto(ctx context.Context, category Weekday) ([]byte, error)
	UpdateMenuItem(ctx context.Context, name string, image []byte, price decimal.Decimal, category Weekday) error
	CollectionTimes(ctx context.Context) ([]string, error)
	Offers(ctx context.Context) ([]string, error)

	// Cart building (line-level).
	AddOrder(ctx context.Context, userID int64, username, name, item string) error
	LatestPendingItem(ctx context.Context, userID int64) (string, error)
	SetQuantity(ctx context.Context, quantity int64, userID int64, item string) error
	SetRemarks(ctx context.Context, remarks string, userID int64, item string) error

	// Checkout (cart-level, broadcast to all pending rows of the user).
	SetFullName(ctx context.Context, name string, userID int64) error
	SetContactNumber(ctx context.Context, number int64, userID int64) error
	SetCollectionTime(ctx context.Context, collectionTime string, userID int64) error
	SetLocation(ctx context.Context, location string, userID int64) error
	SetReceiptImage(ctx context.Context, image []byte, userID int64) error
	MarkAllPaid(ctx context.Context, userID int64) error

	// Reads and housekeeping.
	PendingOrder(ctx context.Context, userID int64) ([]CartLine, error)
	DeletePending(ctx context.Context, userID int64) error
	DeletePaid(ctx context.Context, userID int64) error
	PaidOrders(ctx context.Context) ([]PaidOrder, error)
	Purge(ctx context.Context) error
}
