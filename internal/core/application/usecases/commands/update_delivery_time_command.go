package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDeliveryTimeCommandIsNotConstructed = errors.New(
	"UpdateDeliveryTimeCommand must be created via NewUpdateDeliveryTimeCommand constructor",
)

type UpdateDeliveryTimeCommand struct {
	orderID uint64
	actor   kernel.Actor
	minutes int

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryTimeCommand(orderID uint64, actor kernel.Actor, minutes int) (UpdateDeliveryTimeCommand, error) {
	if err := errors.Join(validateOrderID(orderID), order.ValidateEstimatedMinutes(minutes)); err != nil {
		return UpdateDeliveryTimeCommand{}, err
	}
	return UpdateDeliveryTimeCommand{orderID: orderID, actor: actor, minutes: minutes, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateDeliveryTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryTimeCommandIsNotConstructed)
}

func (c UpdateDeliveryTimeCommand) OrderID() uint64 { return c.orderID }
func (c UpdateDeliveryTimeCommand) Actor() kernel.Actor { return c.actor }
func (c UpdateDeliveryTimeCommand) Minutes() int { return c.minutes }
