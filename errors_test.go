package fetchkit

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeBuild, "build"},
		{ErrCodeTransport, "transport"},
		{ErrCodeInvalidResponse, "invalid_response"},
		{ErrCodeDecode, "decode"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	e := NewStatusError(404, []byte(`{"error":"missing"}`))
	if !strings.Contains(e.Error(), "HTTP 404") {
		t.Errorf("expected status in message, got %q", e.Error())
	}

	e2 := NewBuildError(errors.New("bad body"))
	if strings.Contains(e2.Error(), "HTTP") {
		t.Errorf("connection-level error should not mention a status: %q", e2.Error())
	}
	if !strings.Contains(e2.Error(), "bad body") {
		t.Errorf("expected cause in message, got %q", e2.Error())
	}
}

func TestErrorCheckers(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"build", NewBuildError(cause), IsBuild},
		{"transport", NewTransportError(cause), IsTransport},
		{"status", NewStatusError(500, nil), IsTransport},
		{"invalid_response", NewInvalidResponseError(cause), IsInvalidResponse},
		{"decode", NewDecodeError(cause), IsDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.checker(tt.err) {
				t.Errorf("checker rejected %v", tt.err)
			}
		})
	}

	if IsDecode(NewBuildError(cause)) {
		t.Error("decode checker accepted a build error")
	}
	if IsBuild(nil) {
		t.Error("checker accepted nil")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("malformed input")
	err := NewDecodeError(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}

	wrapped := fmt.Errorf("request failed: %w", err)
	if !IsDecode(wrapped) {
		t.Error("checker should see through wrapping")
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(NewStatusError(429, nil)); got != 429 {
		t.Errorf("expected 429, got %d", got)
	}
	if got := StatusCode(NewTransportError(errors.New("refused"))); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := StatusCode(errors.New("plain")); got != 0 {
		t.Errorf("expected 0 for untyped error, got %d", got)
	}
}
