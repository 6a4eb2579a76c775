package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdatePrepTimeCommandIsNotConstructed = errors.New(
	"UpdatePrepTimeCommand must be created via NewUpdatePrepTimeCommand constructor",
)

type UpdatePrepTimeCommand struct {
	orderID uint64
	actor   kernel.Actor
	minutes int

	guard guard.ConstructorGuard
}

func NewUpdatePrepTimeCommand(orderID uint64, actor kernel.Actor, minutes int) (UpdatePrepTimeCommand, error) {
	if err := errors.Join(validateOrderID(orderID), order.ValidateEstimatedMinutes(minutes)); err != nil {
		return UpdatePrepTimeCommand{}, err
	}
	return UpdatePrepTimeCommand{orderID: orderID, actor: actor, minutes: minutes, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePrepTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePrepTimeCommandIsNotConstructed)
}

func (c UpdatePrepTimeCommand) OrderID() uint64 { return c.orderID }
func (c UpdatePrepTimeCommand) Actor() kernel.Actor { return c.actor }
func (c UpdatePrepTimeCommand) Minutes() int { return c.minutes }
