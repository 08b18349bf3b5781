package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps application errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrMilestoneOutOfSequence),
		errors.Is(err, order.ErrMilestoneAlreadyCompleted),
		errors.Is(err, order.ErrOrderIsDelivered):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoWarehousesAvailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with its mapped status. Internal errors are logged
// and answered with a generic message.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	if details, ok := validationDetails(err); ok {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Details: details,
		})
	}

	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(status, Error{Code: status, Message: http.StatusText(status)})
	}

	return c.JSON(status, Error{Code: status, Message: err.Error()})
}
