package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// SingletonID is the fixed identity of the only settings row.
const SingletonID uint64 = 1

var (
	DefaultOpenTime      = MustClockTime("11:00")
	DefaultLastOrderTime = MustClockTime("22:00")
)

// EmergencyClosure stops admission regardless of operating hours.
type EmergencyClosure struct {
	Active      bool
	Reason      string
	Message     string
	Until       *time.Time
	ActivatedBy *uint64
	ActivatedAt *time.Time
}

// IsActiveAt reports whether the closure is in force at now. A closure past
// its Until instant is no longer in force even before it is lifted.
func (c EmergencyClosure) IsActiveAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	return c.Until == nil || now.Before(*c.Until)
}

// SystemSettings is the process-wide settings aggregate.
type SystemSettings struct {
	hours     OperatingHours
	closure   EmergencyClosure
	limits    Limits
	updatedAt time.Time
	updatedBy *uint64
}

// DefaultSettings is what a missing row is created with.
func DefaultSettings(now time.Time) *SystemSettings {
	return &SystemSettings{
		hours:     OperatingHours{open: DefaultOpenTime, lastOrder: DefaultLastOrderTime},
		limits:    DefaultLimits(),
		updatedAt: now,
	}
}

// Restore rebuilds persisted settings.
func Restore(hours OperatingHours, closure EmergencyClosure, limits Limits, updatedAt time.Time, updatedBy *uint64) *SystemSettings {
	return &SystemSettings{hours: hours, closure: closure, limits: limits, updatedAt: updatedAt, updatedBy: updatedBy}
}

func (s *SystemSettings) OperatingHours() OperatingHours { return s.hours }
func (s *SystemSettings) Closure() EmergencyClosure { return s.closure }
func (s *SystemSettings) Limits() Limits { return s.limits }
func (s *SystemSettings) UpdatedAt() time.Time { return s.updatedAt }
func (s *SystemSettings) UpdatedBy() *uint64 { return s.updatedBy }

func (s *SystemSettings) UpdateLimits(actor kernel.Actor, limits Limits, now time.Time) error {
	if err := limits.Validate(); err != nil {
		return err
	}
	s.limits = limits
	s.touch(actor, now)
	return nil
}

func (s *SystemSettings) UpdateOperatingHours(actor kernel.Actor, hours OperatingHours, now time.Time) error {
	if hours == (OperatingHours{}) {
		return errs.NewValueIsRequiredError("operating hours")
	}
	s.hours = hours
	s.touch(actor, now)
	return nil
}

// ActivateClosure turns the emergency closure on. The message is what
// rejected customers see; until, when given, must be in the future.
func (s *SystemSettings) ActivateClosure(actor kernel.Actor, reason, message string, until *time.Time, now time.Time) error {
	message = strings.TrimSpace(message)
	var err error
	if message == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("closure message"))
	}
	if until != nil && !until.After(now) {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"closure until", fmt.Errorf("%s is not in the future", until.Format(time.RFC3339))))
	}
	if err != nil {
		return err
	}

	activatedAt := now
	s.closure = EmergencyClosure{
		Active:      true,
		Reason:      strings.TrimSpace(reason),
		Message:     message,
		Until:       until,
		ActivatedBy: actor.ID(),
		ActivatedAt: &activatedAt,
	}
	s.touch(actor, now)
	return nil
}

// DeactivateClosure lifts the closure. Lifting an inactive closure is a no-op.
func (s *SystemSettings) DeactivateClosure(actor kernel.Actor, now time.Time) {
	if !s.closure.Active {
		return
	}
	s.closure = EmergencyClosure{}
	s.touch(actor, now)
}

// LiftExpiredClosure clears a closure whose Until has passed and reports
// whether it did.
func (s *SystemSettings) LiftExpiredClosure(now time.Time) bool {
	if !s.closure.Active || s.closure.Until == nil || now.Before(*s.closure.Until) {
		return false
	}
	s.closure = EmergencyClosure{}
	s.touch(kernel.SystemActor(), now)
	return true
}

func (s *SystemSettings) touch(actor kernel.Actor, now time.Time) {
	s.updatedAt = now
	s.updatedBy = actor.ID()
}
