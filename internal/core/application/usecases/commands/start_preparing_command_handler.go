package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// StartPreparingCommandHandler claims the kitchen slot. The claim is guarded
// the same way as delivery acceptance: the order is re-read under lock inside
// the transaction and written with a version compare-and-swap, so among
// concurrent kitchen actors exactly one wins and the rest get AlreadyAssigned.
type StartPreparingCommandHandler struct {
	runner transitionRunner
}

func NewStartPreparingCommandHandler(deps TransitionDeps) StartPreparingCommandHandler {
	return StartPreparingCommandHandler{runner: newTransitionRunner(deps, "start preparing", kitchenRoles)}
}

func (h StartPreparingCommandHandler) Handle(ctx context.Context, cmd StartPreparingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.StartPreparing(cmd.Actor(), cmd.EstimatedMinutes(), now)
	})
}
