package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand is issued by the payment capture callback.
type ConfirmOrderCommand struct {
	orderID   uint64
	actor     kernel.Actor
	paymentID string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates the command. paymentID may be empty when the
// draft already carried the payment reference.
func NewConfirmOrderCommand(orderID uint64, actor kernel.Actor, paymentID string) (ConfirmOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}
	return ConfirmOrderCommand{
		orderID:   orderID,
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() uint64 { return c.orderID }
func (c ConfirmOrderCommand) Actor() kernel.Actor { return c.actor }
func (c ConfirmOrderCommand) PaymentID() string { return c.paymentID }
