package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

type MarkReadyCommandHandler struct {
	runner transitionRunner
}

func NewMarkReadyCommandHandler(deps TransitionDeps) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{runner: newTransitionRunner(deps, "mark ready", kitchenRoles)}
}

func (h MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.runner.run(ctx, cmd.OrderID(), cmd.Actor(), func(o *order.Order, now time.Time) error {
		return o.MarkReady(cmd.Actor(), now)
	})
}
