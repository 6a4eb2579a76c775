package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPreparingCommandIsNotConstructed = errors.New(
	"StartPreparingCommand must be created via NewStartPreparingCommand constructor",
)

// StartPreparingCommand claims a confirmed order for the calling kitchen actor.
type StartPreparingCommand struct {
	orderID          uint64
	actor            kernel.Actor
	estimatedMinutes int

	guard guard.ConstructorGuard
}

func NewStartPreparingCommand(orderID uint64, actor kernel.Actor, estimatedMinutes int) (StartPreparingCommand, error) {
	if err := errors.Join(
		validateOrderID(orderID),
		order.ValidateEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return StartPreparingCommand{}, err
	}
	return StartPreparingCommand{
		orderID:          orderID,
		actor:            actor,
		estimatedMinutes: estimatedMinutes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c StartPreparingCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparingCommandIsNotConstructed)
}

func (c StartPreparingCommand) OrderID() uint64 { return c.orderID }
func (c StartPreparingCommand) Actor() kernel.Actor { return c.actor }
func (c StartPreparingCommand) EstimatedMinutes() int { return c.estimatedMinutes }
