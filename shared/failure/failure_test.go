package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"streakhub/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "already completed today",
	}

	if f.Error() != "already completed today" {
		t.Errorf("expected error message to be 'already completed today', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "InvalidCredentials",
			failure: failure.InvalidCredentials,
			code:    http.StatusUnauthorized,
			message: "invalid credentials",
		},
		{
			name:    "NotWorkspaceMember",
			failure: failure.NotWorkspaceMember,
			code:    http.StatusForbidden,
			message: "You are not a member of this workspace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized},
		{name: "NotFound", err: failure.NotFound("goal not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("already a member"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("not yours"), code: http.StatusForbidden},
		{name: "InternalError", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, fail.Code)
			}
		})
	}
}

func TestNilConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.NotFound("todo not found")); code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, code)
	}

	// Wrapped failures keep their code.
	wrapped := fmt.Errorf("complete goal: %w", failure.Conflict("already completed today"))
	if code := failure.GetCode(wrapped); code != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, code)
	}

	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected %d, got %d", http.StatusInternalServerError, code)
	}
}

func TestIsCode(t *testing.T) {
	if !failure.IsCode(failure.Conflict("dup"), http.StatusConflict) {
		t.Error("expected IsCode to match conflict")
	}
	if failure.IsCode(errors.New("plain"), http.StatusConflict) {
		t.Error("plain errors should not match any code")
	}
}
