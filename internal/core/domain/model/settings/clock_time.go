package settings

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	hour   int
	minute int
}

// ParseClockTime parses "HH:MM" in 24-hour notation.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause("clock time", err)
	}
	return ClockTime{hour: t.Hour(), minute: t.Minute()}, nil
}

// MustClockTime is ParseClockTime for literals. It panics on bad input.
func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c ClockTime) minutes() int {
	return c.hour*60 + c.minute
}

// On returns the instant at this clock time on t's calendar day in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, c.hour, c.minute, 0, 0, t.Location())
}
