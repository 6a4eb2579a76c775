package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler completes a delivery. Couriers may only complete
// their own deliveries; admins may complete any.
type MarkDeliveredCommandHandler struct {
	runner transitionRunner
}

func NewMarkDeliveredCommandHandler(deps TransitionDeps) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{runner: newTransitionRunner(deps, "mark delivered", courierRoles)}
}

func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.MarkDelivered(cmd.Actor(), now)
	})
}
