package settings

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// OperatingHours is the window in which new orders are admitted. A window
// whose last order time is before its open time wraps past midnight.
type OperatingHours struct {
	open      ClockTime
	lastOrder ClockTime
}

func NewOperatingHours(open, lastOrder ClockTime) (OperatingHours, error) {
	if open == lastOrder {
		return OperatingHours{}, errs.NewValueIsInvalidErrorWithCause(
			"operating hours", fmt.Errorf("open time %s equals last order time", open))
	}
	return OperatingHours{open: open, lastOrder: lastOrder}, nil
}

func (h OperatingHours) Open() ClockTime { return h.open }
func (h OperatingHours) LastOrder() ClockTime { return h.lastOrder }

func (h OperatingHours) wraps() bool {
	return h.lastOrder.minutes() < h.open.minutes()
}

// IsOpen reports whether t, already expressed in the restaurant's timezone,
// lies within the window. Both ends are inclusive at minute precision.
func (h OperatingHours) IsOpen(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	if h.wraps() {
		return m >= h.open.minutes() || m <= h.lastOrder.minutes()
	}
	return m >= h.open.minutes() && m <= h.lastOrder.minutes()
}

// NextOpen returns the first opening instant strictly after t.
func (h OperatingHours) NextOpen(t time.Time) time.Time {
	candidate := h.open.On(t)
	if !candidate.After(t) {
		candidate = h.open.On(t.AddDate(0, 0, 1))
	}
	return candidate
}
