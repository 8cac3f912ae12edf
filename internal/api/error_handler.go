package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/enrollment/enrollment-api/internal/api/handler"
	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the response envelope with success=false.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = handler.Fail(c, code, msg, detail)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, any) {
	code, msg, detail := classify(err)
	if code == 0 {
		// Unexpected error: log the real cause, return a generic message.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		return http.StatusInternalServerError, "Something is wrong, please try again", nil
	}

	var me *handler.MessageError
	if errors.As(err, &me) {
		msg = me.Message
	}
	return code, msg, detail
}

// classify returns code 0 for errors it does not recognise.
func classify(err error) (int, string, any) {
	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Validation failed", validationDetail(err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password!", nil
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden access", nil
	case errors.Is(err, domain.ErrStudentNotFound):
		return http.StatusNotFound, "Student does not exists", nil
	case errors.Is(err, domain.ErrEnrollmentNotFound):
		return http.StatusNotFound, "Enrollment does not exist", nil
	case errors.Is(err, domain.ErrEnrollmentExists):
		return http.StatusConflict, "studentId && courseId is already exists", nil
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}
	return 0, "", nil
}

// validationDetail strips the sentinel prefix so the client sees only the
// field messages.
func validationDetail(err error) string {
	msg := err.Error()
	if rest, found := strings.CutPrefix(msg, domain.ErrValidation.Error()+": "); found {
		return rest
	}
	return msg
}
