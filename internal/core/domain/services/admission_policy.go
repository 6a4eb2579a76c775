package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"
)

// AdmissionPolicy evaluates admission checks against a settings snapshot.
// Each check returns nil or an *errs.AdmissionDeniedError carrying the reason.
// The policy holds no state; callers decide the order of the checks and where
// the counts come from.
//
// Example usage:
//
//	policy := services.NewAdmissionPolicy()
//	if err := policy.CheckClosure(s, now); err != nil {
//	    return err
//	}
//	if err := policy.CheckHours(s, now.In(restaurantTZ)); err != nil {
//	    return err
//	}
type AdmissionPolicy struct{}

func NewAdmissionPolicy() AdmissionPolicy {
	return AdmissionPolicy{}
}

// CheckClosure rejects with the stored closure message while a closure is in force.
func (p AdmissionPolicy) CheckClosure(s *settings.SystemSettings, now time.Time) error {
	closure := s.Closure()
	if !closure.IsActiveAt(now) {
		return nil
	}
	message := closure.Message
	if message == "" {
		message = "ordering is temporarily unavailable"
	}
	return errs.NewAdmissionDeniedError(errs.AdmissionEmergencyClosure, message)
}

// CheckHours rejects outside the operating window. localNow must already be in
// the restaurant's timezone; the rejection carries the next opening instant.
func (p AdmissionPolicy) CheckHours(s *settings.SystemSettings, localNow time.Time) error {
	hours := s.OperatingHours()
	if hours.IsOpen(localNow) {
		return nil
	}
	next := hours.NextOpen(localNow)
	return errs.NewAdmissionDeniedUntilError(
		errs.AdmissionOutsideOperatingHours,
		fmt.Sprintf("we are closed, orders open again at %s", next.Format("2006-01-02 15:04")),
		next,
	)
}

// CheckRateLimit rejects once recentOrders, the count over the trailing hour,
// reaches the hourly limit.
func (p AdmissionPolicy) CheckRateLimit(s *settings.SystemSettings, recentOrders int64) error {
	limit := s.Limits().MaxOrdersPerHour
	if recentOrders < int64(limit) {
		return nil
	}
	return errs.NewAdmissionDeniedError(
		errs.AdmissionRateLimited,
		fmt.Sprintf("too many orders, at most %d per hour are accepted", limit),
	)
}

// CheckCapacity rejects once activeOrders reaches the active order limit.
func (p AdmissionPolicy) CheckCapacity(s *settings.SystemSettings, activeOrders int64) error {
	if activeOrders < int64(s.Limits().MaxActiveOrders) {
		return nil
	}
	return errs.NewAdmissionDeniedError(
		errs.AdmissionAtCapacity,
		"the kitchen is at capacity, please try again shortly",
	)
}

// CheckCartSize rejects carts above the item limit.
func (p AdmissionPolicy) CheckCartSize(s *settings.SystemSettings, items int) error {
	limit := s.Limits().MaxCartItems
	if items <= limit {
		return nil
	}
	return errs.NewAdmissionDeniedError(
		errs.AdmissionTooManyItems,
		fmt.Sprintf("cart has %d items, at most %d are allowed", items, limit),
	)
}
