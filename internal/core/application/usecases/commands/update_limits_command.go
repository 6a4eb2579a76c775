package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateLimitsCommandIsNotConstructed = errors.New(
	"UpdateLimitsCommand must be created via NewUpdateLimitsCommand constructor",
)

type UpdateLimitsCommand struct {
	actor  kernel.Actor
	limits settings.Limits

	guard guard.ConstructorGuard
}

func NewUpdateLimitsCommand(actor kernel.Actor, limits settings.Limits) (UpdateLimitsCommand, error) {
	if err := limits.Validate(); err != nil {
		return UpdateLimitsCommand{}, err
	}
	return UpdateLimitsCommand{actor: actor, limits: limits, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateLimitsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLimitsCommandIsNotConstructed)
}

func (c UpdateLimitsCommand) Actor() kernel.Actor { return c.actor }
func (c UpdateLimitsCommand) Limits() settings.Limits { return c.limits }
