package http

import (
	"context"
	"errors"
	"net/http"

	"pizzashop/internal/pkg/errs"
	"pizzashop/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		ctx := c.Request().Context()
		logging.FromCtx(ctx, s.logger).ErrorContext(ctx, "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
