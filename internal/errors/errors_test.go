package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrInvalidConfig, ExitUser),
			want: "invalid configuration",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  NewExitError(errors.New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrUnknownFormat, ExitUser),
			wantTarget: ErrUnknownFormat,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(Wrap(ErrInvalidConfig, "loading"), ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrUnknownFormat, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrUnknownFormat,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("errors.Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitError_As(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantAs   bool
	}{
		{
			name:     "direct ExitError",
			err:      NewExitError(ErrInvalidConfig, ExitUser),
			wantCode: ExitUser,
			wantAs:   true,
		},
		{
			name:     "wrapped ExitError",
			err:      fmt.Errorf("command failed: %w", NewExitError(ErrInvalidConfig, ExitUser)),
			wantCode: ExitUser,
			wantAs:   true,
		},
		{
			name:     "ExitSystem code",
			err:      NewSystemError(ErrUnknownFormat, "check permissions"),
			wantCode: ExitSystem,
			wantAs:   true,
		},
		{
			name:     "non-ExitError",
			err:      ErrInvalidConfig,
			wantCode: 0,
			wantAs:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitErr *ExitError
			got := errors.As(tt.err, &exitErr)
			if got != tt.wantAs {
				t.Fatalf("errors.As() = %v, want %v", got, tt.wantAs)
			}
			if got && exitErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", exitErr.Code, tt.wantCode)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	err := NewUserError(ErrInvalidConfig, "fix the config")
	if err.Code != ExitUser {
		t.Errorf("Code = %d, want %d", err.Code, ExitUser)
	}
	if err.Suggestion != "fix the config" {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, "fix the config")
	}
}
