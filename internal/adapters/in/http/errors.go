package http

import (
	"errors"
	"net/http"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP statuses and records the rejection.
//
//	ObjectNotFound    -> 404
//	Unauthorized      -> 403
//	InvalidTransition -> 422
//	AlreadyProcessed  -> 409
//	Conflict          -> 409
//	value errors      -> 400
//
// Anything unmapped is a 500 with a generic body so internals never leak.
func respondError(ctx echo.Context, operation string, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		metrics.OperationsRejectedTotal.WithLabelValues(operation, "validation").Inc()
		return ctx.JSON(httpErr.Code, ErrorResponse{
			Code:    httpErr.Code,
			Message: http.StatusText(httpErr.Code),
		})
	}

	var status int
	var reason string
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, reason = http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrUnauthorized):
		status, reason = http.StatusForbidden, "unauthorized"
	case errors.Is(err, errs.ErrInvalidTransition):
		status, reason = http.StatusUnprocessableEntity, "invalid_transition"
	case errors.Is(err, errs.ErrAlreadyProcessed):
		status, reason = http.StatusConflict, "already_processed"
	case errors.Is(err, errs.ErrConflict):
		status, reason = http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, reason = http.StatusBadRequest, "validation"
	default:
		metrics.OperationsRejectedTotal.WithLabelValues(operation, "internal").Inc()
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	metrics.OperationsRejectedTotal.WithLabelValues(operation, reason).Inc()
	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
