// internal/app/features/stats/views.go
package stats

import (
	"context"
	"fmt"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/system/inputval"
	"github.com/dalemusser/schoolreports/internal/app/system/limits"
	"github.com/dalemusser/schoolreports/internal/app/system/metrics"
	"github.com/dalemusser/schoolreports/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type viewsData struct {
	format.ViewStatsReport
	Years     []int  `json:"years"`
	TotalText string `json:"totalText"`
}

// load parses the year filter and builds the report. It writes the error
// response itself and returns ok=false on failure.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (viewsData, bool) {
	p := inputval.ViewStatsParams{Year: query.Get(r, "year")}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad view stats params", err, err.Error())
		return viewsData{}, false
	}
	year, err := format.ParseYearFilter(p.Year)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad year filter", err, "Invalid year.")
		return viewsData{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Report())
	defer cancel()

	start := time.Now()
	counters, err := h.Counters.ListAll(ctx)
	metrics.ObserveReport("view_stats", start, err)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "list page counters failed", err)
		return viewsData{}, false
	}

	rep := format.BuildViewStatsReport(counters, year)
	return viewsData{
		ViewStatsReport: rep,
		Years:           format.CounterYears(counters),
		TotalText:       h.Locale.FormatNumber(rep.Total),
	}, true
}

// ServeViews handles GET /stats/views?year=All|YYYY.
func (h *Handler) ServeViews(w http.ResponseWriter, r *http.Request) {
	d, ok := h.load(w, r)
	if !ok {
		return
	}
	uierrors.OK(w, d, len(d.Rows) == 0)
}

// ServeViewsXLSX handles GET /stats/views.xlsx.
func (h *Handler) ServeViewsXLSX(w http.ResponseWriter, r *http.Request) {
	d, ok := h.load(w, r)
	if !ok {
		return
	}

	rows := make([][]any, 0, len(d.Rows))
	for i, row := range d.Rows {
		rows = append(rows, []any{i + 1, row.PageName, row.Page, row.Views})
	}
	sheet := format.Sheet{
		Name:   "Page views",
		Header: []string{"#", "Page", "Code", "Views"},
		Rows:   rows,
		Footer: []any{"", "Total", "", d.Total},
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="page-views-%s.xlsx"`, d.Year))
	if err := format.WriteWorkbook(w, sheet); err != nil {
		h.Log.Error("write view stats workbook", zap.Error(err))
	}
}

// ServeReset handles POST /stats/views/reset. The caller must send
// confirm=RESET; every counter is deleted.
func (h *Handler) ServeReset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxResetFormSize)
	p := inputval.ResetParams{Confirm: r.FormValue("confirm")}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogBadRequest(w, r, "reset not confirmed", err, "Type RESET to confirm deleting all page view counters.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Reset())
	defer cancel()

	n, err := h.Counters.ResetAll(ctx)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "reset page counters failed", err)
		return
	}
	uierrors.OK(w, map[string]int64{"deleted": n}, false)
}
