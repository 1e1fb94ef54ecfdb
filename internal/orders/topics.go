package orders

import "strconv"

const (
	TopicOrderPaid      = "spread.order.paid"
	TopicOrderCancelled = "spread.order.cancelled"
	TopicOrderPurged    = "spread.order.purged"
	TopicMenuUpdated    = "spread.menu.updated"
)

// PartitionKey keys events by user id so one user's events stay ordered.
func PartitionKey(userID int64) []byte {
	return []byte(strconv.FormatInt(userID, 10))
}
