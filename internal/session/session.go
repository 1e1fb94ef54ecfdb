// Package session tracks which conversation step a user is on. The order
// data itself lives in the order repository; a session only names the next
// expected input, so losing one mid-conversation loses no accumulated rows.
package session

import "context"

// State is a conversation step awaiting user input. A user with no state is
// in free navigation.
type State string

const (
	// Order flow: item picked -> quantity -> remarks.
	StateQuantity State = "ORDER_QUANTITY"
	StateRemarks  State = "ORDER_REMARKS"

	// Payment flow, entered via /pay.
	StateFullName       State = "PAY_FULL_NAME"
	StateContactNumber  State = "PAY_CONTACT_NUMBER"
	StateCollectionTime State = "PAY_COLLECTION_TIME"
	StateLocation       State = "PAY_LOCATION"
	StateReceiptImage   State = "PAY_RECEIPT_IMAGE"

	// Admin flow, entered via /editmenu.
	StateEditMenu State = "ADMIN_EDIT_MENU"
)

// Store persists the per-user state. Implementations: RedisStore for the
// running bot, MemoryStore for tests.
type Store interface {
	Get(ctx context.Context, userID int64) (State, bool, error)
	Set(ctx context.Context, userID int64, s State) error
	Clear(ctx context.Context, userID int64) error
}
