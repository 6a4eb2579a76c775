package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRemakeOrderCommandIsNotConstructed = errors.New(
	"RemakeOrderCommand must be created via NewRemakeOrderCommand constructor",
)

// RemakeOrderCommand sends a ready order back to the kitchen, for example
// after a quality check failed.
type RemakeOrderCommand struct {
	orderID uint64
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

func NewRemakeOrderCommand(orderID uint64, actor kernel.Actor, reason string) (RemakeOrderCommand, error) {
	reason = strings.TrimSpace(reason)
	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(validateOrderID(orderID), reasonErr); err != nil {
		return RemakeOrderCommand{}, err
	}
	return RemakeOrderCommand{orderID: orderID, actor: actor, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c RemakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemakeOrderCommandIsNotConstructed)
}

func (c RemakeOrderCommand) OrderID() uint64 { return c.orderID }
func (c RemakeOrderCommand) Actor() kernel.Actor { return c.actor }
func (c RemakeOrderCommand) Reason() string { return c.reason }
