package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

// errorResponse is the envelope for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler builds the central echo error handler. Domain sentinel
// errors map to their HTTP status here, so handlers can return service errors
// unwrapped.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var httpErr *echo.HTTPError
		var validationErrs validator.ValidationErrors

		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		case errors.As(err, &validationErrs):
			status = http.StatusBadRequest
			message = "validation failed: " + validationErrs.Error()
		case errors.Is(err, domain.ErrComplaintNotFound),
			errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrQRNotFound):
			status = http.StatusNotFound
			message = err.Error()
		case errors.Is(err, domain.ErrInvalidStatus),
			errors.Is(err, domain.ErrInvalidComplaintType),
			errors.Is(err, domain.ErrInvalidPriority),
			errors.Is(err, domain.ErrInvalidWardNumber):
			status = http.StatusUnprocessableEntity
			message = err.Error()
		case errors.Is(err, domain.ErrMissingLocation),
			errors.Is(err, domain.ErrMissingWardNumber),
			errors.Is(err, domain.ErrWeakPassword):
			status = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
			message = err.Error()
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, domain.ErrNotAdmin),
			errors.Is(err, domain.ErrAccountDisabled),
			errors.Is(err, domain.ErrBadRegistrationSecret),
			errors.Is(err, domain.ErrForbidden):
			status = http.StatusForbidden
			message = err.Error()
		}

		if status >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}

		if writeErr := c.JSON(status, errorResponse{Success: false, Message: message}); writeErr != nil {
			log.Error().Err(writeErr).Msg("writing error response")
		}
	}
}
