package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "without internal error",
			err: &Error{
				HTTPStatus: http.StatusNotFound,
				Code:       "not_found",
				Message:    "Resource not found",
			},
			expected: "not_found: Resource not found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "internal_error",
				Message:    "Something went wrong",
				Internal:   errors.New("mailgun unreachable"),
			},
			expected: "internal_error: Something went wrong (mailgun unreachable)",
		},
		{
			name: "empty message",
			err: &Error{
				HTTPStatus: http.StatusBadRequest,
				Code:       "bad_request",
			},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternal("failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the internal cause")
	}
	if ErrBadRequest.Unwrap() != nil {
		t.Error("Unwrap() on a bare error should be nil")
	}
}

func TestWithMethodsDoNotMutateOriginal(t *testing.T) {
	custom := ErrBadRequest.WithMessage("prompt must not be empty")

	if ErrBadRequest.Message != "Invalid request" {
		t.Errorf("original message changed to %q", ErrBadRequest.Message)
	}
	if custom.Message != "prompt must not be empty" {
		t.Errorf("Message = %q", custom.Message)
	}
	if custom.HTTPStatus != http.StatusBadRequest || custom.Code != "bad_request" {
		t.Errorf("status/code not preserved: %d %s", custom.HTTPStatus, custom.Code)
	}

	detailed := ErrValidation.WithDetails(map[string]any{"email": "invalid"})
	if len(ErrValidation.Details) != 0 {
		t.Error("original details changed")
	}
	if detailed.Details["email"] != "invalid" {
		t.Errorf("Details = %v", detailed.Details)
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{"app error", NewBadRequest("nope"), http.StatusBadRequest, "bad_request", false},
		{"wrapped app error", fmt.Errorf("handler: %w", ErrRateLimited), http.StatusTooManyRequests, "rate_limited", false},
		{"validation with details", NewValidation("bad form", map[string]any{"email": "required"}), http.StatusUnprocessableEntity, "validation_error", true},
		{"plain error", errors.New("unexpected"), http.StatusInternalServerError, "internal_error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			errObj := body["error"].(map[string]any)
			if errObj["code"] != tt.wantCode {
				t.Errorf("code = %v, want %s", errObj["code"], tt.wantCode)
			}
			if _, ok := errObj["details"]; ok != tt.wantDetails {
				t.Errorf("details present = %v, want %v", ok, tt.wantDetails)
			}
		})
	}
}

func TestNewInternal(t *testing.T) {
	cause := errors.New("gemini timeout")
	err := NewInternal("strategy failed", cause)

	if err.HTTPStatus != http.StatusInternalServerError || err.Code != "internal_error" {
		t.Errorf("status/code = %d %s", err.HTTPStatus, err.Code)
	}
	if err.Message != "strategy failed" {
		t.Errorf("Message = %q", err.Message)
	}
	if ErrInternal.Internal != nil || ErrInternal.Message != "An internal error occurred" {
		t.Errorf("ErrInternal was mutated: %+v", ErrInternal)
	}
}

func TestNewValidation(t *testing.T) {
	err := NewValidation("invalid contact message", map[string]any{"email": "must be a valid address"})

	status, body := ToHTTPError(err)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	errBody := body["error"].(map[string]any)
	if errBody["code"] != "validation_error" {
		t.Errorf("code = %v", errBody["code"])
	}
	details := errBody["details"].(map[string]any)
	if details["email"] != "must be a valid address" {
		t.Errorf("details = %v", details)
	}
}
