// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/schoolreports/internal/app/system/observability"
	"github.com/dalemusser/schoolreports/internal/app/system/pagenames"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
	"github.com/dalemusser/schoolreports/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// flushSentry is replaced by Startup when Sentry is enabled.
var flushSentry = func() {}

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It enables Sentry, applies timeouts, loads the page name table and starts
// the live school watch.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	flush, err := observability.InitSentry(appCfg.SentryDSN, coreCfg.Env, appCfg.Release)
	if err != nil {
		logger.Warn("sentry init failed; continuing without it", zap.Error(err))
	}
	flushSentry = flush

	timeouts.Configure(timeouts.Config{
		Write:  appCfg.CounterTimeout,
		Report: appCfg.ReportTimeout,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("write", cur.Write),
		zap.Duration("report", cur.Report),
		zap.Duration("reset", cur.Reset))

	if err := pagenames.Load(); err != nil {
		logger.Error("page names failed to load", zap.Error(err))
		return err
	}

	return startWatchers(deps, appCfg, logger)
}

func startWatchers(deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	if deps.Queries == nil || deps.Live == nil || deps.Watchers == nil {
		return errors.New("startup: dependencies not connected")
	}
	// The watch outlives Startup's context; Shutdown stops it.
	h := snapshot.Watch(context.Background(), "school", appCfg.LiveRefreshInterval, deps.Queries.LoadSchool, logger)
	deps.Live.set(h)
	deps.Watchers.Add(h)
	return nil
}
