package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		wantError string
		wantUser  string
	}{
		{
			name:      "message only",
			err:       New(ErrCodeInvalidArgument, "n must be at least %d, got %d", 1, 0),
			wantError: "INVALID_ARGUMENT: n must be at least 1, got 0",
			wantUser:  "n must be at least 1, got 0",
		},
		{
			name:      "with cause",
			err:       Wrap(ErrCodeInvalidFormat, io.ErrUnexpectedEOF, "decode %s", "graph.json"),
			wantError: "INVALID_FORMAT: decode graph.json: unexpected EOF",
			wantUser:  "decode graph.json: unexpected EOF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantError {
				t.Errorf("Error() = %q, want %q", got, tt.wantError)
			}
			if got := UserMessage(tt.err); got != tt.wantUser {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantUser)
			}
		})
	}

	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	sentinel := errors.New("link endpoint out of range")
	err := fmt.Errorf("islands: %w", Wrap(ErrCodeInvalidInput, sentinel, "bad graph"))

	if !errors.Is(err, sentinel) {
		t.Error("cause not reachable through errors.Is")
	}
	var coded *Error
	if !errors.As(err, &coded) || coded.Cause != sentinel {
		t.Errorf("errors.As = %v", coded)
	}
}

func TestCodeLookup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeInvalidState, "start twice"), ErrCodeInvalidState},
		{"outermost wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInternal},
		{"behind fmt wrap", fmt.Errorf("run: %w", New(ErrCodeTooLarge, "n")), ErrCodeTooLarge},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(%q) = false", tt.want)
			}
			if Is(tt.err, "") {
				t.Error(`Is("") should never match`)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidArgument, true},
		{ErrCodeInvalidState, true},
		{ErrCodeFileNotFound, true},
		{ErrCodeTooLarge, true},
		{ErrCodeInternal, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.code.IsClientError(); got != tt.want {
			t.Errorf("%q.IsClientError() = %v, want %v", tt.code, got, tt.want)
		}
	}
}
