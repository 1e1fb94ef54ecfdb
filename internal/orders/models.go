package orders

import "github.com/shopspring/decimal"

// Weekday is the menu grouping key. The vendor only operates Monday through
// Friday, and each weekday doubles as an order-conversation branch selector.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// MenuItem is one row of food_details. Each category holds exactly one
// editable representative row: UpdateMenuItem matches by category, so two
// rows sharing a category cannot be edited independently.
type MenuItem struct {
	Name     string
	Price    decimal.Decimal
	Category Weekday
	Image    []byte
}

// OrderLine is one row of order_list. A row is created per item added to the
// cart and its nullable fields are filled progressively by the conversation.
// Quantity and Remarks are line-level; Name, ContactNumber, Location,
// CollectionTime and ReceiptImage are cart-level and stamped onto every
// pending row of the user at once.
type OrderLine struct {
	ID             int64
	UserID         int64
	Username       string
	Name           string
	Item           string
	Quantity       *int64
	Remarks        string
	ContactNumber  *int64
	Location       string
	CollectionTime string
	ReceiptImage   []byte
	Status         Status
}

// CartLine is a pending order line joined against the menu price table.
// LineTotal is price*quantity; it is zero while Quantity is still unset.
type CartLine struct {
	Item      string
	Quantity  *int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// PaidOrder is the staff-facing view of a paid row, used by /vieworderlist.
type PaidOrder struct {
	CollectionTime string
	UserID         int64
	Username       string
	Name           string
	ContactNumber  *int64
	Item           string
	Quantity       *int64
	Location       string
	Remarks        string
	ReceiptImage   []byte
}
