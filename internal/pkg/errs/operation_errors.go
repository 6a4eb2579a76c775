package errs

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrObjectNotFound         = errors.New("object not found")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrAlreadyAssigned        = errors.New("already assigned")
	ErrAdmissionDenied        = errors.New("admission denied")
	ErrRefundInvalid          = errors.New("refund is invalid")
	ErrGatewayFailure         = errors.New("payment gateway failure")
	ErrUnexpected             = errors.New("unexpected failure")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// UnauthorizedError is returned when the acting role or ownership check fails.
type UnauthorizedError struct {
	Action string
	Reason string
	Cause  error
}

func NewUnauthorizedError(action, reason string) *UnauthorizedError {
	return &UnauthorizedError{Action: action, Reason: reason}
}

func NewUnauthorizedErrorWithCause(action, reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Action: action, Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrUnauthorized, e.Action, e.Reason), e.Cause)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ObjectNotFoundError is returned when an order or settings row does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError is returned when the transition table rejects a move
// or the order is not in the status an operation requires.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

func NewInvalidTransitionError(from, to, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyAssignedError is returned when a claim loses against an existing assignee.
type AlreadyAssignedError struct {
	Slot   string
	Reason string
}

func NewAlreadyAssignedError(slot, reason string) *AlreadyAssignedError {
	return &AlreadyAssignedError{Slot: slot, Reason: reason}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrAlreadyAssigned, e.Slot, e.Reason)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// AdmissionReason identifies which admission check rejected an order.
type AdmissionReason string

const (
	AdmissionEmergencyClosure      AdmissionReason = "emergency_closure"
	AdmissionOutsideOperatingHours AdmissionReason = "outside_operating_hours"
	AdmissionRateLimited           AdmissionReason = "rate_limited"
	AdmissionAtCapacity            AdmissionReason = "at_capacity"
	AdmissionTooManyItems          AdmissionReason = "too_many_items"
)

// AdmissionDeniedError carries the specific reason so clients can render an
// actionable message. NextOpenAt is set for operating hours rejections only.
type AdmissionDeniedError struct {
	Reason     AdmissionReason
	Message    string
	NextOpenAt *time.Time
}

func NewAdmissionDeniedError(reason AdmissionReason, message string) *AdmissionDeniedError {
	return &AdmissionDeniedError{Reason: reason, Message: message}
}

func NewAdmissionDeniedUntilError(reason AdmissionReason, message string, nextOpenAt time.Time) *AdmissionDeniedError {
	return &AdmissionDeniedError{Reason: reason, Message: message, NextOpenAt: &nextOpenAt}
}

func (e *AdmissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrAdmissionDenied, e.Reason, e.Message)
}

func (e *AdmissionDeniedError) Unwrap() error {
	return ErrAdmissionDenied
}

// RefundInvalidError is returned when a refund amount or order state precondition fails.
type RefundInvalidError struct {
	Reason string
}

func NewRefundInvalidError(reason string) *RefundInvalidError {
	return &RefundInvalidError{Reason: reason}
}

func (e *RefundInvalidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRefundInvalid, e.Reason)
}

func (e *RefundInvalidError) Unwrap() error {
	return ErrRefundInvalid
}

// GatewayFailureError wraps a failed payment gateway call.
type GatewayFailureError struct {
	PaymentID string
	Cause     error
}

func NewGatewayFailureError(paymentID string, cause error) *GatewayFailureError {
	return &GatewayFailureError{PaymentID: paymentID, Cause: cause}
}

func (e *GatewayFailureError) Error() string {
	return withCause(fmt.Sprintf("%s: payment %s", ErrGatewayFailure, e.PaymentID), e.Cause)
}

func (e *GatewayFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGatewayFailure}
	}
	return []error{ErrGatewayFailure, e.Cause}
}

// UnexpectedError wraps store and I/O failures. The order is left unchanged
// and the caller may retry after re-reading it.
type UnexpectedError struct {
	Operation string
	Cause     error
}

func NewUnexpectedError(operation string) *UnexpectedError {
	return &UnexpectedError{Operation: operation}
}

func NewUnexpectedErrorWithCause(operation string, cause error) *UnexpectedError {
	return &UnexpectedError{Operation: operation, Cause: cause}
}

func (e *UnexpectedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnexpected, e.Operation), e.Cause)
}

func (e *UnexpectedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnexpected}
	}
	return []error{ErrUnexpected, e.Cause}
}

// IsTyped reports whether err already belongs to the taxonomy above or is a
// validation error, so callers know whether it still needs wrapping.
func IsTyped(err error) bool {
	for _, target := range []error{
		ErrUnauthorized, ErrObjectNotFound, ErrInvalidTransition, ErrAlreadyAssigned,
		ErrAdmissionDenied, ErrRefundInvalid, ErrGatewayFailure, ErrUnexpected,
		ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
