package ports

import (
	"context"
	"time"
)

// StatusChange describes a committed status change or audit event.
type StatusChange struct {
	OrderID        uint64
	PreviousStatus string
	Status         string
	ActorID        *uint64
	CustomerID     *uint64
	Note           string
	OccurredAt     time.Time
}

// Notifier delivers status change notifications. Callers treat it as
// fire-and-forget: an error is logged, never propagated to the transition.
type Notifier interface {
	NotifyStatusChanged(ctx context.Context, change StatusChange) error
}
