package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
	"github.com/dalemusser/schoolreports/internal/app/system/timeouts"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/schoolreports/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testAppConfig() AppConfig {
	return AppConfig{
		MongoURI:            "mongodb://localhost:27017",
		MongoDatabase:       "school_test",
		MongoMaxPoolSize:    10,
		MongoMinPoolSize:    1,
		Timezone:            "Asia/Bangkok",
		Locale:              "en",
		CounterTimeout:      time.Second,
		ReportTimeout:       5 * time.Second,
		LiveRefreshInterval: time.Hour,
		Release:             "test",
	}
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"no database", func(c *AppConfig) { c.MongoDatabase = " " }, "mongo_database"},
		{"bad timezone", func(c *AppConfig) { c.Timezone = "Mars/Olympus" }, "timezone"},
		{"bad locale", func(c *AppConfig) { c.Locale = "fr" }, "locale"},
		{"pool sizes", func(c *AppConfig) { c.MongoMinPoolSize = 50 }, "mongo_min_pool_size"},
		{"zero interval", func(c *AppConfig) { c.LiveRefreshInterval = 0 }, "positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testAppConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func memoryDeps(t *testing.T) (DBDeps, *recordstore.Memory) {
	t.Helper()
	mem := recordstore.NewMemory()
	deps, err := newDeps(nil, nil, mem, testAppConfig(), testLogger())
	if err != nil {
		t.Fatalf("newDeps: %v", err)
	}
	return deps, mem
}

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestBuildHandler_Routes(t *testing.T) {
	deps, mem := memoryDeps(t)
	fx := testutil.NewFixtures(t, mem)
	fx.Teacher("t1", "Anan")
	fx.Student("s1", "Nida", models.LevelPrimary, "t1")

	h, err := BuildHandler(&config.CoreConfig{}, testAppConfig(), deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	tests := []struct {
		method, target string
		want           int
	}{
		{http.MethodGet, "/health", http.StatusServiceUnavailable},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/pageviews/home", http.StatusNoContent},
		{http.MethodGet, "/stats/views", http.StatusOK},
		{http.MethodGet, "/reports/students/by-teacher", http.StatusOK},
		{http.MethodGet, "/reports/leave/rollup?fy=2025", http.StatusOK},
		{http.MethodGet, "/dashboard/live", http.StatusAccepted},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		if rec := get(t, h, tt.method, tt.target); rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d (%s)", tt.method, tt.target, rec.Code, tt.want, rec.Body.String())
		}
	}
	deps.Counters.Wait()
}

func TestStartupAndShutdown(t *testing.T) {
	t.Cleanup(timeouts.Restore)

	deps, mem := memoryDeps(t)
	testutil.NewFixtures(t, mem).Teacher("t1", "Anan")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := Startup(ctx, &config.CoreConfig{}, testAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if got := timeouts.Report(); got != 5*time.Second {
		t.Errorf("report timeout = %v", got)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, state, _ := deps.Live.Current(); state == snapshot.Ready {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("live snapshot never became ready")
		}
		time.Sleep(10 * time.Millisecond)
	}

	h, err := BuildHandler(&config.CoreConfig{}, testAppConfig(), deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	if rec := get(t, h, http.MethodGet, "/dashboard/live"); rec.Code != http.StatusOK {
		t.Errorf("dashboard = %d (%s)", rec.Code, rec.Body.String())
	}

	if err := Shutdown(ctx, &config.CoreConfig{}, testAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestStartWatchers_RequiresDeps(t *testing.T) {
	if err := startWatchers(DBDeps{}, testAppConfig(), testLogger()); err == nil {
		t.Error("expected error for unconnected deps")
	}
}

func TestLiveSchool_BeforeStart(t *testing.T) {
	var l liveSchool
	if _, state, err := l.Current(); state != snapshot.Loading || err != nil {
		t.Errorf("got %v, %v", state, err)
	}
	if !l.Updated().IsZero() {
		t.Error("updated should be zero before start")
	}
}

func TestEnsureSchema(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps, err := newDeps(nil, db, recordstore.NewMongo(db), testAppConfig(), testLogger())
	if err != nil {
		t.Fatalf("newDeps: %v", err)
	}
	if err := EnsureSchema(ctx, &config.CoreConfig{}, testAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	names, err := db.ListCollectionNames(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("list collections: %v", err)
	}
	if len(names) < 8 {
		t.Errorf("collections = %v", names)
	}
}
