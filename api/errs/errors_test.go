package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	boom := errors.New("connection reset")
	cases := []struct {
		name    string
		err     error
		verbose bool
		status  int
		message string
	}{
		{"known", ErrProjectNotFound, false, http.StatusNotFound, "project not found"},
		{"wrapped", fmt.Errorf("loading: %w", ErrMemberConflict), false, http.StatusBadRequest, ErrMemberConflict.Error()},
		{"rate limited", ErrTooManyRequests, false, http.StatusTooManyRequests, ErrTooManyRequests.Error()},
		{"setup", &SetupError{Cause: boom}, false, http.StatusServiceUnavailable, "database is not set up yet"},
		{"unknown hidden", boom, false, http.StatusInternalServerError, UnhandledMessage},
		{"unknown verbose", boom, true, http.StatusInternalServerError, "connection reset"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := Resolve(tc.err, tc.verbose)
			if status != tc.status || message != tc.message {
				t.Fatalf("got %d %q, want %d %q", status, message, tc.status, tc.message)
			}
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"max=3"`
	}
	err := validator.New().Struct(payload{Name: "toolong"})

	status, message := Resolve(NewValidationError(err), false)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(message, `"Email" is required`) || !strings.Contains(message, `"Name" must be at most 3`) {
		t.Fatalf("unexpected message: %s", message)
	}

	var body map[string]any
	syntaxErr := json.Unmarshal([]byte(`{`), &body)
	if msg := NewValidationError(syntaxErr).Error(); msg != "request body is not valid JSON" {
		t.Fatalf("unexpected syntax message: %s", msg)
	}
}

func TestSetupErrorDetails(t *testing.T) {
	cause := errors.New("no DATABASE_URL")
	err := &SetupError{Cause: cause}

	if !errors.Is(err, ErrDatabaseUnavailable) || !errors.Is(err, cause) {
		t.Fatalf("SetupError should unwrap to both sentinel and cause")
	}
	quiet := err.Details(false).(map[string]any)
	if _, ok := quiet["reason"]; ok {
		t.Fatalf("reason leaked outside verbose mode")
	}
	if steps, ok := quiet["steps"].([]string); !ok || len(steps) != len(SetupSteps) {
		t.Fatalf("steps missing: %v", quiet)
	}
	if loud := err.Details(true).(map[string]any); loud["reason"] != "no DATABASE_URL" {
		t.Fatalf("reason missing in verbose mode: %v", loud)
	}
}
