// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection helpers

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/savekeeper/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "slot not found",
			wantStr: "[NOT_FOUND] slot not found",
		},
		{
			name:    "blocked_error",
			code:    errors.ErrBlocked,
			message: "game is running",
			wantStr: "[BLOCKED] game is running",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConflict, "mod %q already installed", "retex")

	if want := `[CONFLICT] mod "retex" already installed`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := errors.Wrap(inner, errors.ErrIOFailure, "failed to write archive")

	if want := "[IO_FAILURE] failed to write archive: disk full"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should satisfy errors.Is against the inner error")
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrIOFailure, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrIOFailure, "ignored %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrValidationFailed, "invalid game path").
		WithDetail("problems", []string{"Missing 'NFL1.exe'."})

	problems, ok := err.Details["problems"].([]string)
	if !ok || len(problems) != 1 {
		t.Errorf("Details[problems] = %v, want one problem", err.Details["problems"])
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "slot not found")
	target := errors.New(errors.ErrNotFound, "different message")

	if !stderrors.Is(err, target) {
		t.Error("errors with the same code should match via errors.Is")
	}

	other := errors.New(errors.ErrConflict, "slot not found")
	if stderrors.Is(err, other) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsCode(t *testing.T) {
	err := errors.Wrap(
		errors.New(errors.ErrNotFound, "backup not found"),
		errors.ErrIOFailure, "restore failed")

	// The outermost code wins.
	if !errors.IsCode(err, errors.ErrIOFailure) {
		t.Error("IsCode should report the outermost code")
	}
	if errors.IsCode(nil, errors.ErrNotFound) {
		t.Error("IsCode(nil) should be false")
	}
	if errors.IsCode(stderrors.New("plain"), errors.ErrNotFound) {
		t.Error("IsCode on a foreign error should be false")
	}
}

func TestCodeOf(t *testing.T) {
	if got := errors.CodeOf(errors.New(errors.ErrBlocked, "busy")); got != errors.ErrBlocked {
		t.Errorf("CodeOf() = %v, want %v", got, errors.ErrBlocked)
	}
	if got := errors.CodeOf(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("CodeOf(foreign) = %v, want %v", got, errors.ErrUnknown)
	}
}
