package bot

import (
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/thespread/spreadbot/internal/kafka"
	"github.com/thespread/spreadbot/internal/orders"
)

// publish emits a lifecycle event, fire and forget. Events never gate a chat
// reply.
func (b *Bot) publish(topic, eventType string, userID int64, payload any) {
	if b.Events == nil {
		return
	}
	env := orders.Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     b.Cfg.ServiceName,
		Payload:      kafkax.MustMarshal(payload),
	}
	b.Events.Publish(topic, orders.PartitionKey(userID), kafkax.MustMarshal(env),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
	)
}
