package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorFormatting(t *testing.T) {
	err := NewNetworkError("request failed", errors.New("connection refused"))
	if got := err.Error(); got != "network: request failed (caused by: connection refused)" {
		t.Fatalf("unexpected message %q", got)
	}
	if NewParseError("bad json", nil).Error() != "parse: bad json" {
		t.Fatal("unexpected message without cause")
	}
}

func TestAppErrorIsAndUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := fmt.Errorf("outer: %w", NewExtractionError("pdf", cause))

	if !errors.Is(err, &AppError{Type: ErrorTypeExtraction}) {
		t.Fatal("expected type match through wrapping")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeNetwork}) {
		t.Fatal("unexpected type match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	if GetErrorType(err) != ErrorTypeExtraction {
		t.Fatalf("got %s", GetErrorType(err))
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, ErrorTypeIO, "x") != nil {
		t.Fatal("wrapping nil must return nil")
	}

	inner := NewResponseError("status 500", nil)
	wrapped := WrapError(inner, "", "translation failed")
	if wrapped.Type != ErrorTypeResponse || !strings.HasPrefix(wrapped.Message, "translation failed: ") {
		t.Fatalf("type should be preserved: %+v", wrapped)
	}

	overridden := WrapError(inner, ErrorTypeSystem, "other")
	if overridden.Type != ErrorTypeSystem {
		t.Fatalf("explicit type should win: %+v", overridden)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorType
	}{
		{context.DeadlineExceeded, ErrorTypeTimeout},
		{errors.New("open x: no such file or directory"), ErrorTypeIO},
		{errors.New("dial tcp: connection refused"), ErrorTypeNetwork},
		{errors.New("invalid character 'x' looking for beginning of value"), ErrorTypeParse},
		{errors.New("something else"), ErrorTypeSystem},
	}
	for _, tt := range tests {
		if got := GetErrorType(tt.err); got != tt.want {
			t.Errorf("%v: got %s want %s", tt.err, got, tt.want)
		}
	}
}

func TestWithContext(t *testing.T) {
	err := (&AppError{Type: ErrorTypeExtraction}).WithContext("page", 3)
	if err.Context["page"] != 3 {
		t.Fatalf("context not set: %v", err.Context)
	}
}
