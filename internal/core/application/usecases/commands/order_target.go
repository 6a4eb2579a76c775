package commands

import (
	"fulfillment/internal/pkg/errs"
)

func validateOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	return nil
}
