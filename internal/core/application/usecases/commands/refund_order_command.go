package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand reverses captured funds. A nil amount refunds whatever is
// still refundable.
type RefundOrderCommand struct {
	orderID uint64
	actor   kernel.Actor
	amount  *kernel.Money
	reason  string

	guard guard.ConstructorGuard
}

func NewRefundOrderCommand(orderID uint64, actor kernel.Actor, amount *kernel.Money, reason string) (RefundOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return RefundOrderCommand{}, err
	}
	var copied *kernel.Money
	if amount != nil {
		v := *amount
		copied = &v
	}
	return RefundOrderCommand{
		orderID: orderID,
		actor:   actor,
		amount:  copied,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

func (c RefundOrderCommand) OrderID() uint64 { return c.orderID }
func (c RefundOrderCommand) Actor() kernel.Actor { return c.actor }
func (c RefundOrderCommand) Reason() string { return c.reason }

// Amount returns the requested amount, nil for a full refund.
func (c RefundOrderCommand) Amount() *kernel.Money {
	if c.amount == nil {
		return nil
	}
	v := *c.amount
	return &v
}
