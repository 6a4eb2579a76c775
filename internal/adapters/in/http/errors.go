package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError renders a use case error. Unexpected failures never leak their cause.
func writeError(ctx echo.Context, err error) error {
	status, body := errorResponse(err, isAuthenticated(ctx))
	if status >= http.StatusInternalServerError {
		ctx.Logger().Errorf("request failed: %v", err)
	}
	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

func errorResponse(err error, authenticated bool) (int, servers.Error) {
	reply := func(code int, message string) (int, servers.Error) {
		return code, servers.Error{Code: code, Message: message}
	}

	var denied *errs.AdmissionDeniedError
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrGatewayFailure):
		return reply(http.StatusBadGateway, "Payment gateway failure")
	case errors.Is(err, errs.ErrUnexpected):
		return reply(http.StatusInternalServerError, "Internal error")
	case errors.As(err, &denied):
		code := http.StatusServiceUnavailable
		if denied.Reason == errs.AdmissionRateLimited {
			code = http.StatusTooManyRequests
		}
		reason := string(denied.Reason)
		return code, servers.Error{Code: code, Message: denied.Message, Reason: &reason, NextOpenAt: denied.NextOpenAt}
	case errors.Is(err, errs.ErrUnauthorized):
		if !authenticated {
			return reply(http.StatusUnauthorized, "Authentication required")
		}
		return reply(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return reply(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyAssigned):
		return reply(http.StatusConflict, "order already taken")
	case errors.Is(err, errs.ErrInvalidTransition):
		return reply(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrRefundInvalid):
		return reply(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return reply(http.StatusBadRequest, err.Error())
	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return reply(httpErr.Code, message)
	default:
		return reply(http.StatusInternalServerError, "Internal error")
	}
}

// errorHandler renders framework errors (routing, binding, request
// validation) with the same body as use case errors.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = echo.NewHTTPError(http.StatusInternalServerError)
	}
	status, body := errorResponse(httpErr, isAuthenticated(ctx))
	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, body)
}
