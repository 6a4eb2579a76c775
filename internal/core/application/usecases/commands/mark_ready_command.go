package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

type MarkReadyCommand struct {
	orderID uint64
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewMarkReadyCommand(orderID uint64, actor kernel.Actor) (MarkReadyCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return MarkReadyCommand{}, err
	}
	return MarkReadyCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

func (c MarkReadyCommand) OrderID() uint64 { return c.orderID }
func (c MarkReadyCommand) Actor() kernel.Actor { return c.actor }
