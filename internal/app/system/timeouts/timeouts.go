// Package timeouts provides centralized timeout values for store and report
// operations.
//
// Handlers wrap their work in context.WithTimeout using these values so that
// a slow backend cannot pin a request. Values can be overridden once at
// startup with Configure; zero fields keep the defaults.
//
//   - Ping: health checks
//   - Write: a single counter increment (fire-and-forget)
//   - Report: loading a snapshot and building one report
//   - Reset: destructive bulk operations such as clearing all counters
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultWrite  = 5 * time.Second
	DefaultReport = 20 * time.Second
	DefaultReset  = 60 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	write  = DefaultWrite
	report = DefaultReport
	reset  = DefaultReset
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Write returns the timeout for one counter increment.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Report returns the timeout for building one report from a fresh snapshot.
func Report() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return report
}

// Reset returns the timeout for bulk deletes.
func Reset() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return reset
}

// Config holds timeout overrides. Zero values are ignored.
type Config struct {
	Ping   time.Duration
	Write  time.Duration
	Report time.Duration
	Reset  time.Duration
}

// Configure applies the non-zero values in cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
	if cfg.Report > 0 {
		report = cfg.Report
	}
	if cfg.Reset > 0 {
		reset = cfg.Reset
	}
}

// Restore puts every timeout back to its default. Tests use it.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	write = DefaultWrite
	report = DefaultReport
	reset = DefaultReset
}

// Current returns the active configuration, for startup logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Write: write, Report: report, Reset: reset}
}
