// internal/app/bootstrap/live.go
package bootstrap

import (
	"sync/atomic"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
)

type schoolHandle = snapshot.Handle[reportqueries.School]

// liveSchool exposes the school watch once Startup has begun it. Until
// then it reports Loading.
type liveSchool struct {
	h atomic.Pointer[schoolHandle]
}

func (l *liveSchool) set(h *schoolHandle) { l.h.Store(h) }

func (l *liveSchool) Current() (reportqueries.School, snapshot.State, error) {
	h := l.h.Load()
	if h == nil {
		return reportqueries.School{}, snapshot.Loading, nil
	}
	return h.Current()
}

func (l *liveSchool) Updated() time.Time {
	h := l.h.Load()
	if h == nil {
		return time.Time{}
	}
	return h.Updated()
}
