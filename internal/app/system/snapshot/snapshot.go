// internal/app/system/snapshot/snapshot.go
//
// Package snapshot keeps a periodically reloaded copy of a data set. Each
// tick loads a fresh full snapshot; nothing is updated incrementally.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/system/metrics"
	"go.uber.org/zap"
)

// State describes what Current can return.
type State int

const (
	// Loading means no load has finished yet.
	Loading State = iota
	// Ready means the last load succeeded.
	Ready
	// Failed means the last load failed. The value from the last good load,
	// if any, is still returned.
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Loader produces one snapshot.
type Loader[T any] func(ctx context.Context) (T, error)

// Handle is a running watch. It is safe for concurrent use.
type Handle[T any] struct {
	name     string
	interval time.Duration
	load     Loader[T]
	log      *zap.Logger

	mu      sync.RWMutex
	value   T
	state   State
	err     error
	updated time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Watch loads immediately and then every interval until ctx is done or Stop
// is called. Each load gets its own timeout of one interval.
func Watch[T any](ctx context.Context, name string, interval time.Duration, load Loader[T], logger *zap.Logger) *Handle[T] {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle[T]{
		name:     name,
		interval: interval,
		load:     load,
		log:      logger,
		cancel:   cancel,
	}
	h.wg.Add(1)
	go h.run(ctx)
	logger.Info("snapshot watch started", zap.String("watch", name), zap.Duration("interval", interval))
	return h
}

// Name returns the watch name.
func (h *Handle[T]) Name() string { return h.name }

// Current returns the latest snapshot, its state and the last load error.
func (h *Handle[T]) Current() (T, State, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value, h.state, h.err
}

// Updated returns when the last successful load finished.
func (h *Handle[T]) Updated() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.updated
}

// Stop ends the watch and waits for an in-flight load to return.
func (h *Handle[T]) Stop() {
	h.cancel()
	h.wg.Wait()
}

func (h *Handle[T]) run(ctx context.Context) {
	defer h.wg.Done()

	h.refresh(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("snapshot watch stopped", zap.String("watch", h.name))
			return
		case <-ticker.C:
			h.refresh(ctx)
		}
	}
}

func (h *Handle[T]) refresh(ctx context.Context) {
	lctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	v, err := h.load(lctx)
	if ctx.Err() != nil {
		return
	}
	metrics.SnapshotRefresh(h.name, err)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.state = Failed
		h.err = err
		h.log.Warn("snapshot load failed", zap.String("watch", h.name), zap.Error(err))
		return
	}
	h.value = v
	h.state = Ready
	h.err = nil
	h.updated = time.Now()
}

// Stopper is anything Group can stop.
type Stopper interface {
	Stop()
}

// Group stops a set of watches together.
type Group struct {
	mu       sync.Mutex
	stoppers []Stopper
}

// Add registers s with the group.
func (g *Group) Add(s Stopper) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stoppers = append(g.stoppers, s)
}

// StopAll stops every registered watch.
func (g *Group) StopAll() {
	g.mu.Lock()
	list := g.stoppers
	g.stoppers = nil
	g.mu.Unlock()

	for _, s := range list {
		s.Stop()
	}
}
