// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	dashboardfeature "github.com/dalemusser/schoolreports/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/schoolreports/internal/app/features/errors"
	healthfeature "github.com/dalemusser/schoolreports/internal/app/features/health"
	pageviewsfeature "github.com/dalemusser/schoolreports/internal/app/features/pageviews"
	reportsfeature "github.com/dalemusser/schoolreports/internal/app/features/reports"
	statsfeature "github.com/dalemusser/schoolreports/internal/app/features/stats"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every feature gets its own subrouter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	loc, err := time.LoadLocation(appCfg.Timezone)
	if err != nil {
		return nil, err
	}
	locale := format.LocaleByName(appCfg.Locale, loc)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	var pinger healthfeature.Pinger
	if deps.MongoClient != nil {
		pinger = deps.MongoClient
	}
	healthHandler := healthfeature.NewHandler(pinger, appCfg.Release, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler())

	// Page-view counting and the view-stats report
	pageviewsHandler := pageviewsfeature.NewHandler(deps.Counters, logger)
	r.Mount("/pageviews", pageviewsfeature.Routes(pageviewsHandler))

	statsHandler := statsfeature.NewHandler(deps.Counters, locale, errLog, logger)
	r.Mount("/stats", statsfeature.Routes(statsHandler))

	// Reports
	reportsHandler := reportsfeature.NewHandler(deps.Queries, locale, errLog, logger)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler))

	// Live overview
	dashboardHandler := dashboardfeature.NewHandler(deps.Live, locale, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	return r, nil
}
