package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivering ──> Delivered
//	                              ^           │
//	                              └─ remake ──┘
//
// Every non-terminal status may additionally move to Cancelled.
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status, set once admission control accepted the order.
	Pending

	// Confirmed is set by the system actor after payment capture.
	Confirmed

	// Preparing means a kitchen actor claimed the order.
	Preparing

	// Ready means the food waits for a courier.
	Ready

	// Delivering means a courier claimed the order.
	Delivering

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

// legacySucceeded is an old persisted spelling of Delivered, accepted on read only.
const legacySucceeded = "SUCCEEDED"

var statusNames = map[Status]string{
	Unknown:    "UNKNOWN",
	Pending:    "PENDING",
	Confirmed:  "CONFIRMED",
	Preparing:  "PREPARING",
	Ready:      "READY",
	Delivering: "DELIVERING",
	Delivered:  "DELIVERED",
	Cancelled:  "CANCELLED",
}

// transitions is the table of allowed destinations per source status.
var transitions = map[Status][]Status{
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {Preparing, Cancelled},
	Preparing:  {Ready, Cancelled},
	Ready:      {Delivering, Preparing, Cancelled},
	Delivering: {Delivered, Cancelled},
	Delivered:  {},
	Cancelled:  {},
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Delivering, Delivered, Cancelled}
}

// ActiveStatuses lists the non-terminal statuses.
func ActiveStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Delivering}
}

// ParseStatus maps a persisted or wire name to a Status. The legacy
// "SUCCEEDED" name is read as Delivered.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == legacySucceeded {
		return Delivered, nil
	}
	for status, n := range statusNames {
		if n == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the seven lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether no further transition is accepted from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the table allows s -> to.
// It is a pure lookup; invalid statuses never transition.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition is CanTransitionTo returning a typed error.
//
// Example:
//
//	if err := order.Ready.ValidateTransition(order.Delivered); err != nil {
//	    // errors.Is(err, errs.ErrInvalidTransition) == true
//	}
func (s Status) ValidateTransition(to Status) error {
	if s.CanTransitionTo(to) {
		return nil
	}
	reason := ""
	if s.IsTerminal() {
		reason = fmt.Sprintf("order is already %s", strings.ToLower(s.String()))
	}
	return errs.NewInvalidTransitionError(s.String(), to.String(), reason)
}
