// Package ports defines the contracts between the application core and
// infrastructure adapters: persistence, transactions, and event publishing.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is stored and loaded whole: every child collection travels
// with it.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency: the write only succeeds when the stored version still
	// matches the aggregate's loaded version, and bumps it by one. A version
	// mismatch yields a Conflict error; a missing row yields ObjectNotFound.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier with all of
	// its child collections. Returns ObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
