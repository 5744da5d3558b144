// internal/app/store/pagestats/store.go
//
// Package pagestats is the page view counter store. Counters are kept per
// page name and calendar year in the page_stats collection.
package pagestats

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/app/system/metrics"
	"github.com/dalemusser/schoolreports/internal/app/system/observability"
	"github.com/dalemusser/schoolreports/internal/app/system/timeouts"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"go.uber.org/zap"
)

// Store reads and writes page view counters.
type Store struct {
	rs  recordstore.Store
	log *zap.Logger
	loc *time.Location
	now func() time.Time

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, which decides the counter year.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone the counter year is computed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New returns a Store over rs.
func New(rs recordstore.Store, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{rs: rs, log: logger, loc: time.UTC, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Increment adds one view to name for the current year. It never returns an
// error: a failed write is logged, counted and reported, and the view is
// lost. Blank names are ignored.
func (s *Store) Increment(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	now := s.now()
	year := now.In(s.loc).Year()
	id := models.CounterID(name, year)

	err := s.rs.AtomicIncrement(ctx, models.CollPageStats, id, "views", 1, recordstore.Document{
		"page":        name,
		"year":        year,
		"lastUpdated": now.UTC(),
	})
	if err != nil {
		s.log.Warn("page view increment dropped",
			zap.String("page", name),
			zap.Int("year", year),
			zap.Error(err))
		metrics.CounterWriteFailure()
		observability.CaptureWithTags(err, map[string]string{"counter": id})
		return
	}
	metrics.CounterWrite()
}

// IncrementAsync runs Increment in the background with its own timeout so
// the caller never waits on the store. After Close the view is dropped.
func (s *Store) IncrementAsync(name string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Warn("page view after close dropped", zap.String("page", name))
		metrics.CounterWriteFailure()
		return
	}
	s.inflight.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Write())
		defer cancel()
		s.Increment(ctx, name)
	}()
}

// Wait blocks until background increments started so far have finished.
// The caller must not be starting new ones concurrently; use Close for that.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Close stops accepting background increments and waits for the queued ones.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.inflight.Wait()
}

// ListAll returns every counter across all names and years. Documents that
// cannot be decoded are logged and skipped.
func (s *Store) ListAll(ctx context.Context) ([]models.NamedCounter, error) {
	docs, err := s.rs.Query(ctx, models.CollPageStats, nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.NamedCounter, 0, len(docs))
	for _, d := range docs {
		c, err := recordstore.Decode[models.NamedCounter](d)
		if err != nil {
			s.log.Warn("skipping malformed page counter", zap.String("id", d.ID()), zap.Error(err))
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ResetAll deletes every counter and returns how many were removed.
// There is no undo.
func (s *Store) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.rs.DeleteAll(ctx, models.CollPageStats)
	if err != nil {
		return 0, err
	}
	s.log.Info("page counters reset", zap.Int64("deleted", n))
	return n, nil
}
