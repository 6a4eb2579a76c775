package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

type MarkDeliveredCommand struct {
	orderID uint64
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(orderID uint64, actor kernel.Actor) (MarkDeliveredCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return MarkDeliveredCommand{}, err
	}
	return MarkDeliveredCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) OrderID() uint64 { return c.orderID }
func (c MarkDeliveredCommand) Actor() kernel.Actor { return c.actor }
