// internal/app/features/stats/handler.go
package stats

import (
	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/store/pagestats"
	"go.uber.org/zap"
)

// Handler serves the page view statistics and the counter reset.
type Handler struct {
	Counters *pagestats.Store
	Locale   format.Locale
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs a stats Handler.
func NewHandler(counters *pagestats.Store, locale format.Locale, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Counters: counters,
		Locale:   locale,
		Log:      logger,
		ErrLog:   errLog,
	}
}
