// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the reporting service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, timezone, etc.
//   - Environment variables: SCHOOLREPORTS_MONGO_URI, SCHOOLREPORTS_TIMEZONE, etc.
//   - Command-line flags: --mongo_uri, --timezone, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "school", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "timezone", Default: "Asia/Bangkok", Desc: "IANA time zone for calendar and fiscal years"},
	{Name: "locale", Default: "th", Desc: "Report locale: 'th' or 'en'"},

	{Name: "counter_timeout", Default: "5s", Desc: "Timeout for one page-view increment"},
	{Name: "report_timeout", Default: "20s", Desc: "Timeout for building one report"},
	{Name: "live_refresh_interval", Default: "30s", Desc: "How often the live overview reloads its snapshot"},

	{Name: "sentry_dsn", Default: "", Desc: "Sentry DSN (blank disables error reporting)"},
	{Name: "release", Default: "dev", Desc: "Release identifier reported by /health"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// SCHOOLREPORTS_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SCHOOLREPORTS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		Timezone: appValues.String("timezone"),
		Locale:   strings.ToLower(strings.TrimSpace(appValues.String("locale"))),

		CounterTimeout:      appValues.Duration("counter_timeout", 5*time.Second),
		ReportTimeout:       appValues.Duration("report_timeout", 20*time.Second),
		LiveRefreshInterval: appValues.Duration("live_refresh_interval", 30*time.Second),

		SentryDSN: appValues.String("sentry_dsn"),
		Release:   appValues.String("release"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked before any connection attempt, and the
// time zone must be loadable because every fiscal window depends on it.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(appCfg)
}

func validateAppConfig(appCfg AppConfig) error {
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database is required")
	}
	if _, err := time.LoadLocation(appCfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", appCfg.Timezone, err)
	}
	switch appCfg.Locale {
	case "th", "en":
	default:
		return fmt.Errorf("locale must be 'th' or 'en', got %q", appCfg.Locale)
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if appCfg.CounterTimeout <= 0 || appCfg.ReportTimeout <= 0 || appCfg.LiveRefreshInterval <= 0 {
		return fmt.Errorf("timeouts and live_refresh_interval must be positive")
	}
	return nil
}
