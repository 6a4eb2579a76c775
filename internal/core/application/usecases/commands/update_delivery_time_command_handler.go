package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

type UpdateDeliveryTimeCommandHandler struct {
	runner transitionRunner
}

func NewUpdateDeliveryTimeCommandHandler(deps TransitionDeps) UpdateDeliveryTimeCommandHandler {
	return UpdateDeliveryTimeCommandHandler{runner: newTransitionRunner(deps, "update delivery time", courierRoles)}
}

func (h UpdateDeliveryTimeCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryTimeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.UpdateDeliveryTime(cmd.Actor(), cmd.Minutes(), now)
	})
}
