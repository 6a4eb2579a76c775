package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand submits a checkout draft for admission and creation.
//
// Example:
//
//	item, _ := order.NewItem("Margherita", 1, kernel.MustMoney("9.50"))
//	cmd, err := NewCreateOrderCommand(customer, order.Draft{
//	    Items:       []order.Item{item},
//	    TotalAmount: kernel.MustMoney("9.50"),
//	    ClientIP:    "203.0.113.7",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid draft: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	actor kernel.Actor
	draft order.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the draft. Admission limits are checked by the handler.
func NewCreateOrderCommand(actor kernel.Actor, draft order.Draft) (CreateOrderCommand, error) {
	if err := draft.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	return CreateOrderCommand{
		actor: actor,
		draft: draft,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}
