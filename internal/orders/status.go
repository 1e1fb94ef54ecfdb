package orders

// Status is the order-line lifecycle flag. PENDING rows are the user's cart;
// the flip to PAID happens once per user, for every pending row at the same
// time, when a payment receipt is accepted.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)
