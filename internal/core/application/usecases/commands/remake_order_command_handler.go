package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// RemakeOrderCommandHandler moves Ready -> Preparing, keeping the kitchen assignee.
type RemakeOrderCommandHandler struct {
	runner transitionRunner
}

func NewRemakeOrderCommandHandler(deps TransitionDeps) RemakeOrderCommandHandler {
	return RemakeOrderCommandHandler{runner: newTransitionRunner(deps, "remake order", kitchenRoles)}
}

func (h RemakeOrderCommandHandler) Handle(ctx context.Context, cmd RemakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.Remake(cmd.Actor(), cmd.Reason(), now)
	})
}
