// Package ports defines the contracts between the fulfillment core and its
// infrastructure: persistence, notification, payments and time.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its id and initial version.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a changed order if its stored version still equals
	// aggregate.Version(), then advances the version. A stale version yields
	// errs.ErrConcurrentModification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. A missing order yields *errs.ObjectNotFoundError.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetForUpdate is Get taking a row lock for the rest of the transaction
	// where the store supports it.
	GetForUpdate(ctx context.Context, id uint64) (*order.Order, error)
}

// OrderStatistics answers the admission counting questions. Demo orders are
// never counted.
type OrderStatistics interface {
	// CountCreatedSince counts orders created at or after since by the given
	// actor or from the given client IP. Nil actor and empty IP count nothing.
	CountCreatedSince(ctx context.Context, actorID *uint64, clientIP string, since time.Time) (int64, error)

	// CountActive counts orders in a non-terminal status.
	CountActive(ctx context.Context) (int64, error)
}
