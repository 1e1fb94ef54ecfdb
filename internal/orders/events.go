package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPaid      = "OrderPaid"
	EventOrderCancelled = "OrderCancelled"
	EventOrderPurged    = "OrderListPurged"
	EventMenuUpdated    = "MenuUpdated"
)

// Envelope wraps every published event. Payload is event-type specific.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type PaidItem struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

type OrderPaidPayload struct {
	UserID int64      `json:"user_id"`
	Items  []PaidItem `json:"items"`
	Total  string     `json:"total"` // 2dp decimal string, e.g. "10.00"
}

type OrderCancelledPayload struct {
	UserID int64 `json:"user_id"`
}

type OrderPurgedPayload struct {
	PurgedBy int64 `json:"purged_by"`
}

type MenuUpdatedPayload struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    string `json:"price"` // 2dp decimal string
}
