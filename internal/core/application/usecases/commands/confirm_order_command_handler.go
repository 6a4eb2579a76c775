package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler moves Pending -> Confirmed. Only the system actor may confirm.
type ConfirmOrderCommandHandler struct {
	runner transitionRunner
}

func NewConfirmOrderCommandHandler(deps TransitionDeps) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{runner: newTransitionRunner(deps, "confirm order", confirmRoles)}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.Confirm(cmd.Actor(), cmd.PaymentID(), now)
	})
}
