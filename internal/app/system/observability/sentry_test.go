package observability_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/system/observability"
)

func TestInitSentry_NoDSN(t *testing.T) {
	flush, err := observability.InitSentry("", "test", "v0")
	if err != nil {
		t.Fatalf("InitSentry: %v", err)
	}
	if flush == nil {
		t.Fatal("flush func is nil")
	}
	flush()

	// Without a client these are no-ops and must not panic.
	observability.CaptureErr(errors.New("x"))
	observability.CaptureErr(nil)
	observability.CaptureWithTags(errors.New("x"), map[string]string{"report": "leave"})
	observability.CaptureWithTags(nil, nil)
}

func TestInitSentry_BadDSN(t *testing.T) {
	flush, err := observability.InitSentry("not a dsn", "test", "v0")
	if err == nil {
		t.Fatal("expected error for malformed DSN")
	}
	flush()
}
