// internal/app/features/reports/handler.go
package reports

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/schoolreports/internal/app/system/metrics"
	"github.com/dalemusser/schoolreports/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler owns the report endpoints (JSON plus spreadsheet exports).
//
// Each request loads a fresh snapshot of the records it needs and rebuilds
// the report from it; nothing is cached between requests.
type Handler struct {
	Queries *reportqueries.Queries
	Locale  format.Locale
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
	Now     func() time.Time
}

// NewHandler constructs a reports Handler.
func NewHandler(q *reportqueries.Queries, locale format.Locale, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Queries: q,
		Locale:  locale,
		Log:     logger,
		ErrLog:  errLog,
		Now:     time.Now,
	}
}

func (h *Handler) loc() *time.Location {
	return h.Locale.Location()
}

// build runs load under the report timeout, records its duration and
// outcome, and writes the store error response on failure.
func (h *Handler) build(w http.ResponseWriter, r *http.Request, report string, load func(ctx context.Context) error) bool {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Report())
	defer cancel()

	start := time.Now()
	err := load(ctx)
	metrics.ObserveReport(report, start, err)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, report+" failed", err)
		return false
	}
	return true
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) writeWorkbook(w http.ResponseWriter, filename string, sheets ...format.Sheet) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := format.WriteWorkbook(w, sheets...); err != nil {
		h.Log.Error("write workbook", zap.String("file", filename), zap.Error(err))
	}
}
