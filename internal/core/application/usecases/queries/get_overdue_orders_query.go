package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
		"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
	)
)

// GetOverdueOrdersQuery lists claimed orders that outran their estimate:
// Preparing past prep start plus the prep estimate, Delivering past delivery
// start plus the delivery estimate.
type GetOverdueOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(actor kernel.Actor) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) Actor() kernel.Actor { return q.actor }

// GetOverdueOrdersQueryResponse is one order past its estimate. AssigneeID is
// the kitchen actor for Preparing orders and the courier for Delivering ones.
type GetOverdueOrdersQueryResponse struct {
	OrderID          uint64
	Status           string
	AssigneeID       *uint64
	StartedAt        time.Time
	EstimatedMinutes int
	DueAt            time.Time
	OverdueMinutes   int
}
