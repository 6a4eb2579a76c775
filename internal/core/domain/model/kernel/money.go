package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for amounts.
const moneyScale = 2

// Money is a non-negative monetary amount in the restaurant's single currency.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the zero amount.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney creates Money from a decimal, rounding half away from zero to cents.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// ParseMoney parses a decimal string such as "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// MustMoney is ParseMoney for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other, floored at zero.
func (m Money) Sub(other Money) Money {
	d := m.amount.Sub(other.amount)
	if d.IsNegative() {
		return ZeroMoney
	}
	return Money{amount: d}
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.LessThan(m) {
		return other
	}
	return m
}
