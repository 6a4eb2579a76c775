package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// UpdatePrepTimeCommandHandler revises the preparation estimate of a Preparing order.
type UpdatePrepTimeCommandHandler struct {
	runner transitionRunner
}

func NewUpdatePrepTimeCommandHandler(deps TransitionDeps) UpdatePrepTimeCommandHandler {
	return UpdatePrepTimeCommandHandler{runner: newTransitionRunner(deps, "update prep time", kitchenRoles)}
}

func (h UpdatePrepTimeCommandHandler) Handle(ctx context.Context, cmd UpdatePrepTimeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.UpdatePrepTime(cmd.Actor(), cmd.Minutes(), now)
	})
}
