package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// AcceptDeliveryCommandHandler assigns the courier slot of a Ready order.
// When several couriers accept at once exactly one commits; the others
// observe the stored courier on re-read and get AlreadyAssigned.
type AcceptDeliveryCommandHandler struct {
	runner transitionRunner
}

func NewAcceptDeliveryCommandHandler(deps TransitionDeps) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{runner: newTransitionRunner(deps, "accept delivery", courierRoles)}
}

func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.AcceptDelivery(cmd.Actor(), cmd.EstimatedMinutes(), now)
	})
}
