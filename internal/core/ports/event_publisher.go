package ports

import (
	"context"
	"time"
)

// OrderChangedEvent is the integration event emitted after an order absorbs a
// state-machine operation. Step names match the order's timeline entries.
type OrderChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Step        string    `json:"step"`
	Status      string    `json:"status"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order change events to the message broker.
// Publishing happens after the owning transaction commits and is best effort:
// a broker failure never rolls back the order mutation.
type OrderEventPublisher interface {
	// PublishOrderChanged sends a single order change event.
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
