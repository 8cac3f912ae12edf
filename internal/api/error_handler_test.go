package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/enrollment/enrollment-api/internal/api/handler"
	"github.com/enrollment/enrollment-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", fmt.Errorf("%w: studentID is required", domain.ErrValidation), http.StatusBadRequest, "Validation failed"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password!"},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Forbidden access"},
		{"student missing", domain.ErrStudentNotFound, http.StatusNotFound, "Student does not exists"},
		{"enrollment missing", domain.ErrEnrollmentNotFound, http.StatusNotFound, "Enrollment does not exist"},
		{"conflict", domain.ErrEnrollmentExists, http.StatusConflict, "studentId && courseId is already exists"},
		{"override", &handler.MessageError{Err: domain.ErrForbidden, Message: "nope"}, http.StatusForbidden, "nope"},
		{"echo", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method not allowed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Something is wrong, please try again"},
	}

	e := echo.New()
	h := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var resp handler.Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Success || resp.Message != tt.message {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(fmt.Errorf("%w: courseID must look like CS101", domain.ErrValidation), c)

	var resp handler.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "courseID must look like CS101" {
		t.Fatalf("unexpected detail: %v", resp.Error)
	}
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusForbidden || rec.Body.Len() != 0 {
		t.Fatalf("expected bare 403, got %d %q", rec.Code, rec.Body.String())
	}
}
