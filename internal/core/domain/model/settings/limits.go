package settings

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

const (
	DefaultMaxCartItems     = 20
	DefaultMaxOrdersPerHour = 5
	DefaultMaxActiveOrders  = 30
)

// Limits are the admission thresholds.
type Limits struct {
	MaxCartItems     int
	MaxOrdersPerHour int
	MaxActiveOrders  int
}

func DefaultLimits() Limits {
	return Limits{
		MaxCartItems:     DefaultMaxCartItems,
		MaxOrdersPerHour: DefaultMaxOrdersPerHour,
		MaxActiveOrders:  DefaultMaxActiveOrders,
	}
}

func (l Limits) Validate() error {
	return errors.Join(
		positive("max cart items", l.MaxCartItems),
		positive("max orders per hour", l.MaxOrdersPerHour),
		positive("max active orders", l.MaxActiveOrders),
	)
}

func positive(name string, v int) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", v))
	}
	return nil
}
