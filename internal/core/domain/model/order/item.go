package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Item is one line of an order as priced by checkout.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// NewItem validates a line item.
func NewItem(name string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{Name: strings.TrimSpace(name), Quantity: quantity, UnitPrice: unitPrice}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	var err error
	if i.Name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("item name"))
	}
	if i.Quantity <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"item quantity", fmt.Errorf("%d is not greater than 0", i.Quantity)))
	}
	return err
}

// TotalQuantity sums the quantities of items; it is what the cart size limit counts.
func TotalQuantity(items []Item) int {
	n := 0
	for _, i := range items {
		n += i.Quantity
	}
	return n
}
