package commands

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrActivateClosureCommandIsNotConstructed = errors.New(
	"ActivateClosureCommand must be created via NewActivateClosureCommand constructor",
)

// ActivateClosureCommand stops admission of new orders until it is lifted or
// until passes.
type ActivateClosureCommand struct {
	actor   kernel.Actor
	reason  string
	message string
	until   *time.Time

	guard guard.ConstructorGuard
}

func NewActivateClosureCommand(actor kernel.Actor, reason, message string, until *time.Time) (ActivateClosureCommand, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ActivateClosureCommand{}, errs.NewValueIsRequiredError("closure message")
	}
	var copied *time.Time
	if until != nil {
		v := *until
		copied = &v
	}
	return ActivateClosureCommand{
		actor:   actor,
		reason:  strings.TrimSpace(reason),
		message: message,
		until:   copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ActivateClosureCommand) Validate() error {
	return c.guard.Validate(ErrActivateClosureCommandIsNotConstructed)
}

func (c ActivateClosureCommand) Actor() kernel.Actor { return c.actor }
func (c ActivateClosureCommand) Reason() string { return c.reason }
func (c ActivateClosureCommand) Message() string { return c.message }
func (c ActivateClosureCommand) Until() *time.Time { return c.until }
