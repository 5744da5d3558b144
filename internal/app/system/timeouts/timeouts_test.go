package timeouts_test

import (
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/system/timeouts"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Restore)

	timeouts.Configure(timeouts.Config{Write: 9 * time.Second})

	if got := timeouts.Write(); got != 9*time.Second {
		t.Errorf("Write: got %v, want 9s", got)
	}
	if got := timeouts.Report(); got != timeouts.DefaultReport {
		t.Errorf("Report: got %v, want default %v", got, timeouts.DefaultReport)
	}
}

func TestRestore(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Minute, Reset: time.Hour})
	timeouts.Restore()

	want := timeouts.Config{
		Ping:   timeouts.DefaultPing,
		Write:  timeouts.DefaultWrite,
		Report: timeouts.DefaultReport,
		Reset:  timeouts.DefaultReset,
	}
	if got := timeouts.Current(); got != want {
		t.Errorf("Current: got %+v, want %+v", got, want)
	}
}
