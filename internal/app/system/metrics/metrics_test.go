package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounterWrites(t *testing.T) {
	before := testutil.ToFloat64(counterWrites)
	beforeFail := testutil.ToFloat64(counterWriteFailures)

	CounterWrite()
	CounterWrite()
	CounterWriteFailure()

	if got := testutil.ToFloat64(counterWrites) - before; got != 2 {
		t.Errorf("writes delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(counterWriteFailures) - beforeFail; got != 1 {
		t.Errorf("failures delta = %v, want 1", got)
	}
}

func TestObserveReportOutcome(t *testing.T) {
	ok := reportBuilds.WithLabelValues("metrics_test", "ok")
	failed := reportBuilds.WithLabelValues("metrics_test", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	ObserveReport("metrics_test", time.Now(), nil)
	ObserveReport("metrics_test", time.Now(), errors.New("boom"))
	ObserveReport("metrics_test", time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Errorf("ok delta = %v", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 2 {
		t.Errorf("error delta = %v", got)
	}
}

func TestSnapshotRefresh(t *testing.T) {
	c := snapshotRefreshes.WithLabelValues("metrics_test", "error")
	before := testutil.ToFloat64(c)
	SnapshotRefresh("metrics_test", errors.New("down"))
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("delta = %v", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveReport("metrics_scrape", time.Now(), nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	for _, name := range []string{
		"schoolreports_counter_writes_total",
		"schoolreports_report_builds_total",
		"schoolreports_report_duration_seconds",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("/metrics missing %s", name)
		}
	}
}
