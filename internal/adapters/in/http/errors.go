package http

import (
	"errors"
	"net/http"

	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrPaymentWarning):
		return http.StatusPreconditionRequired
	case errors.Is(err, errs.ErrGuardRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrStaleState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrTransport):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c echo.Context, err error) error {
	code := statusOf(err)
	body := servers.Error{Code: code, Message: err.Error()}

	var guardErr *errs.GuardRejectionError
	if errors.As(err, &guardErr) {
		body.Reason = &guardErr.Reason
	}
	var warning *errs.PaymentWarningError
	if errors.As(err, &warning) {
		body.Warnings = &warning.Warnings
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		if code == http.StatusInternalServerError {
			body.Message = http.StatusText(code)
		}
	}

	return c.JSON(code, body)
}

// handleError renders errors that escape the handlers, such as parameters the generated
// wrapper could not bind, in the same body shape as respondError.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		_ = s.respondError(c, err)
		return
	}

	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Code)
		return
	}
	_ = c.JSON(httpErr.Code, servers.Error{Code: httpErr.Code, Message: message})
}
