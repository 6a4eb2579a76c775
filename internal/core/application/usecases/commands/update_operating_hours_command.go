package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOperatingHoursCommandIsNotConstructed = errors.New(
	"UpdateOperatingHoursCommand must be created via NewUpdateOperatingHoursCommand constructor",
)

type UpdateOperatingHoursCommand struct {
	actor kernel.Actor
	hours settings.OperatingHours

	guard guard.ConstructorGuard
}

// NewUpdateOperatingHoursCommand parses "HH:MM" clock times.
func NewUpdateOperatingHoursCommand(actor kernel.Actor, openTime, lastOrderTime string) (UpdateOperatingHoursCommand, error) {
	open, openErr := settings.ParseClockTime(openTime)
	last, lastErr := settings.ParseClockTime(lastOrderTime)
	if err := errors.Join(openErr, lastErr); err != nil {
		return UpdateOperatingHoursCommand{}, err
	}
	hours, err := settings.NewOperatingHours(open, last)
	if err != nil {
		return UpdateOperatingHoursCommand{}, err
	}
	return UpdateOperatingHoursCommand{actor: actor, hours: hours, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOperatingHoursCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperatingHoursCommandIsNotConstructed)
}

func (c UpdateOperatingHoursCommand) Actor() kernel.Actor { return c.actor }
func (c UpdateOperatingHoursCommand) Hours() settings.OperatingHours { return c.hours }
