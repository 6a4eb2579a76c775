package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand claims a ready order for the calling courier.
type AcceptDeliveryCommand struct {
	orderID          uint64
	actor            kernel.Actor
	estimatedMinutes int

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryCommand(orderID uint64, actor kernel.Actor, estimatedMinutes int) (AcceptDeliveryCommand, error) {
	if err := errors.Join(
		validateOrderID(orderID),
		order.ValidateEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}
	return AcceptDeliveryCommand{
		orderID:          orderID,
		actor:            actor,
		estimatedMinutes: estimatedMinutes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) OrderID() uint64 { return c.orderID }
func (c AcceptDeliveryCommand) Actor() kernel.Actor { return c.actor }
func (c AcceptDeliveryCommand) EstimatedMinutes() int { return c.estimatedMinutes }
