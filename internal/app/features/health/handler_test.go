package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/features/health"
	"github.com/dalemusser/schoolreports/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context, *readpref.ReadPref) error { return p.err }

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Release  string `json:"release"`
	Message  string `json:"message"`
}

func serve(t *testing.T, h *health.Handler) (int, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec.Code, resp
}

func TestServe_Connected(t *testing.T) {
	code, resp := serve(t, health.NewHandler(fakePinger{}, "v1.2.0", zap.NewNop()))
	if code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, code)
	}
	if resp.Status != "ok" || resp.Database != "connected" || resp.Release != "v1.2.0" {
		t.Errorf("response = %+v", resp)
	}
}

func TestServe_Disconnected(t *testing.T) {
	code, resp := serve(t, health.NewHandler(fakePinger{err: errors.New("no reachable servers")}, "", zap.NewNop()))
	if code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, code)
	}
	if resp.Status != "error" || resp.Database != "disconnected" || resp.Message != "Database unavailable" {
		t.Errorf("response = %+v", resp)
	}
}

func TestServe_NoClient(t *testing.T) {
	code, resp := serve(t, health.NewHandler(nil, "", zap.NewNop()))
	if code != http.StatusServiceUnavailable || resp.Database != "not configured" {
		t.Errorf("got %d %+v", code, resp)
	}
}

func TestServe_RealDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	code, resp := serve(t, health.NewHandler(db.Client(), "", zap.NewNop()))
	if code != http.StatusOK || resp.Status != "ok" {
		t.Errorf("code = %d response = %+v", code, resp)
	}
}
