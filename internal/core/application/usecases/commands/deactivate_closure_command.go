package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeactivateClosureCommandIsNotConstructed = errors.New(
	"DeactivateClosureCommand must be created via NewDeactivateClosureCommand constructor",
)

type DeactivateClosureCommand struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewDeactivateClosureCommand(actor kernel.Actor) DeactivateClosureCommand {
	return DeactivateClosureCommand{actor: actor, guard: guard.NewConstructorGuard()}
}

func (c DeactivateClosureCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateClosureCommandIsNotConstructed)
}

func (c DeactivateClosureCommand) Actor() kernel.Actor { return c.actor }
