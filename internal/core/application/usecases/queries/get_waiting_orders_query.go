package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetWaitingOrdersQueryIsNotConstructed = errors.New(
		"GetWaitingOrdersQuery must be created via NewGetWaitingOrdersQuery constructor",
	)
)

// GetWaitingOrdersQuery lists orders nobody has claimed yet for a role:
// Confirmed orders without a kitchen assignee for KITCHEN, Ready orders
// without a courier for COURIER. Demo orders are never listed.
//
// Example:
//
//	query, err := NewGetWaitingOrdersQuery(actor, kernel.RoleCourier, 10)
//	if err != nil {
//	    return err
//	}
//
//	waiting, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read courier queue: %w", err)
//	}
//
//	for _, w := range waiting {
//	    fmt.Printf("Order %d waited %d minutes\n", w.OrderID, w.WaitedMinutes)
//	}
type GetWaitingOrdersQuery struct {
	actor          kernel.Actor
	role           kernel.Role
	minWaitMinutes int

	guard guard.ConstructorGuard
}

// NewGetWaitingOrdersQuery builds the query. Role must be KITCHEN or COURIER;
// minWaitMinutes must not be negative.
func NewGetWaitingOrdersQuery(actor kernel.Actor, role kernel.Role, minWaitMinutes int) (GetWaitingOrdersQuery, error) {
	var err error
	if _, ok := waitingStatus(role); !ok {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"queue role", fmt.Errorf("%s has no waiting queue", role)))
	}
	if minWaitMinutes < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("min wait minutes", minWaitMinutes, 0, "unbounded"))
	}
	if err != nil {
		return GetWaitingOrdersQuery{}, err
	}

	return GetWaitingOrdersQuery{
		actor:          actor,
		role:           role,
		minWaitMinutes: minWaitMinutes,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetWaitingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitingOrdersQueryIsNotConstructed)
}

func (q GetWaitingOrdersQuery) Actor() kernel.Actor { return q.actor }
func (q GetWaitingOrdersQuery) Role() kernel.Role { return q.role }
func (q GetWaitingOrdersQuery) MinWaitMinutes() int { return q.minWaitMinutes }

// GetWaitingOrdersQueryResponse is one unclaimed order. WaitedMinutes counts
// whole minutes since the order entered its current status.
type GetWaitingOrdersQueryResponse struct {
	OrderID       uint64
	Status        string
	WaitingSince  time.Time
	WaitedMinutes int
	TotalAmount   kernel.Money
}

// waitingStatus maps a queue role to the status its work waits in.
func waitingStatus(role kernel.Role) (order.Status, bool) {
	switch role {
	case kernel.RoleKitchen:
		return order.Confirmed, true
	case kernel.RoleCourier:
		return order.Ready, true
	default:
		return order.Unknown, false
	}
}
