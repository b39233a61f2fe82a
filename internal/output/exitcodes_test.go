package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("prompt aborted"),
			wantCode:    ExitUserError,
			wantMessage: "prompt aborted",
		},
		{
			name:        "system error",
			err:         NewSystemError("failed to write data file"),
			wantCode:    ExitSystemError,
			wantMessage: "failed to write data file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")

	sysErr := NewSystemErrorWithCause("failed to write data file", underlying)
	if sysErr.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", sysErr.Code, ExitSystemError)
	}
	if !errors.Is(sysErr, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	userErr := NewUserErrorWithCause("aborted", underlying)
	if userErr.Code != ExitUserError {
		t.Errorf("Code = %d, want %d", userErr.Code, ExitUserError)
	}
	if !errors.Is(userErr, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "ExitError user", err: NewUserError("bad input"), expected: ExitUserError},
		{name: "ExitError system", err: NewSystemError("disk full"), expected: ExitSystemError},
		{
			name:     "wrapped system error",
			err:      fmt.Errorf("logging: %w", NewSystemError("disk full")),
			expected: ExitSystemError,
		},
		{name: "regular error defaults to user error", err: errors.New("some error"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
