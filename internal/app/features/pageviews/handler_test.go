package pageviews_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/features/pageviews"
	"github.com/dalemusser/schoolreports/internal/app/store/pagestats"
	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/testutil"
	"go.uber.org/zap"
)

func newStore(rs recordstore.Store) *pagestats.Store {
	return pagestats.New(rs, zap.NewNop(), pagestats.WithClock(func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
}

func TestRecordCountsConcurrentViews(t *testing.T) {
	counters := newStore(recordstore.NewMemory())
	router := pageviews.Routes(pageviews.NewHandler(counters, zap.NewNop()))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/App_home", nil))
			if rec.Code != http.StatusNoContent {
				t.Errorf("code = %d", rec.Code)
			}
		}()
	}
	wg.Wait()
	counters.Wait()

	ctx, cancel := testutil.TestContext()
	defer cancel()
	all, err := counters.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 || all[0].Views != n || all[0].Year != 2024 {
		t.Errorf("counters = %+v", all)
	}
}

func TestRecordNeverFails(t *testing.T) {
	mem := recordstore.NewMemory()
	mem.SetFault(func(op, coll string) error { return errFault })
	counters := newStore(mem)
	router := pageviews.Routes(pageviews.NewHandler(counters, zap.NewNop()))

	for _, page := range []string{"App_home", "bad%20name"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+page, nil))
		if rec.Code != http.StatusNoContent {
			t.Errorf("%s: code = %d, want 204", page, rec.Code)
		}
	}
	counters.Wait()
}

var errFault = errors.New("unavailable")
