package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

type CancelOrderCommandHandler struct {
	runner transitionRunner
}

func NewCancelOrderCommandHandler(deps TransitionDeps) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{runner: newTransitionRunner(deps, "cancel order", adminRoles)}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.Cancel(cmd.Actor(), cmd.Reason(), now)
	})
}
