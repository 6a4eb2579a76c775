package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order without moving money. Refunds are a
// separate operation.
type CancelOrderCommand struct {
	orderID uint64
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID uint64, actor kernel.Actor, reason string) (CancelOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{
		orderID: orderID,
		actor:   actor,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() uint64 { return c.orderID }
func (c CancelOrderCommand) Actor() kernel.Actor { return c.actor }
func (c CancelOrderCommand) Reason() string { return c.reason }
