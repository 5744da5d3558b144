// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and CORS; everything here belongs to the reporting
// service itself.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Reporting
	Timezone string // IANA zone used for calendar years and fiscal windows
	Locale   string // "th" (Buddhist era dates) or "en"

	// Timeouts
	CounterTimeout      time.Duration // one page-view increment
	ReportTimeout       time.Duration // building one report
	LiveRefreshInterval time.Duration // live overview reload period

	// Error reporting
	SentryDSN string // blank disables Sentry
	Release   string // reported by /health and to Sentry
}
