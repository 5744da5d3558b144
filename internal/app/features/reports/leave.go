// internal/app/features/reports/leave.go
package reports

import (
	"context"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/app/system/inputval"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// fiscalYear reads ?fy=. Buddhist era years are converted; a missing value
// is the current fiscal year.
func (h *Handler) fiscalYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := query.Get(r, "fy")
	fy := 0
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.ErrLog.LogBadRequest(w, r, "bad fiscal year", err, "Invalid fiscal year.")
			return 0, false
		}
		if n > 2400 {
			n -= format.BuddhistEraOffset
		}
		fy = n
	}
	if err := inputval.Struct(inputval.FiscalYearParams{FiscalYear: fy}); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad fiscal year", err, err.Error())
		return 0, false
	}
	if fy == 0 {
		fy = rollup.FiscalYearOf(h.Now().In(h.loc()))
	}
	return fy, true
}

// ServeLeaveTotals handles GET /reports/leave/teachers: all-time leave days
// per teacher.
func (h *Handler) ServeLeaveTotals(w http.ResponseWriter, r *http.Request) {
	var (
		teachers []models.TeacherProfile
		records  []models.LeaveRecord
	)
	ok := h.build(w, r, "leave_totals", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { teachers, err = h.Queries.Teachers(gctx); return })
		g.Go(func() (err error) { records, err = h.Queries.LeaveRecords(gctx, ""); return })
		return g.Wait()
	})
	if !ok {
		return
	}
	rows := rollup.TeacherLeaveTotals(teachers, records)
	uierrors.OK(w, rows, len(rows) == 0)
}

type leaveRollupData struct {
	format.LeaveMatrix
	AvailableYears []int `json:"availableYears"`
}

func (h *Handler) leaveRollup(w http.ResponseWriter, r *http.Request) (leaveRollupData, bool) {
	fy, ok := h.fiscalYear(w, r)
	if !ok {
		return leaveRollupData{}, false
	}
	var (
		teachers []models.TeacherProfile
		records  []models.LeaveRecord
	)
	ok = h.build(w, r, "leave_rollup", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { teachers, err = h.Queries.Teachers(gctx); return })
		g.Go(func() (err error) { records, err = h.Queries.LeaveRecords(gctx, ""); return })
		return g.Wait()
	})
	if !ok {
		return leaveRollupData{}, false
	}

	ids := make([]string, len(teachers))
	for i, t := range teachers {
		ids[i] = t.ID
	}
	tallies := rollup.GroupLeaveByTypeAndSubject(records, fy, h.loc(), ids...)
	return leaveRollupData{
		LeaveMatrix:    format.BuildLeaveMatrix(tallies, teachers, fy, h.Locale),
		AvailableYears: rollup.AvailableFiscalYears(records, h.loc()),
	}, true
}

// ServeLeaveRollup handles GET /reports/leave/rollup?fy=: days per teacher
// and leave type for one fiscal year.
func (h *Handler) ServeLeaveRollup(w http.ResponseWriter, r *http.Request) {
	d, ok := h.leaveRollup(w, r)
	if !ok {
		return
	}
	uierrors.OK(w, d, len(d.Rows) == 0)
}

// ServeLeaveRollupXLSX handles GET /reports/leave/rollup.xlsx?fy=.
func (h *Handler) ServeLeaveRollupXLSX(w http.ResponseWriter, r *http.Request) {
	d, ok := h.leaveRollup(w, r)
	if !ok {
		return
	}
	header := append([]string{"Teacher"}, d.LeaveTypes...)
	header = append(header, "Total")

	rows := make([][]any, 0, len(d.Rows))
	for _, row := range d.Rows {
		cells := []any{row.SubjectName}
		for _, n := range row.Days {
			cells = append(cells, n)
		}
		rows = append(rows, append(cells, row.Total))
	}
	footer := []any{"Total"}
	for _, n := range d.Footer {
		footer = append(footer, n)
	}
	footer = append(footer, d.Total)

	h.writeWorkbook(w, "leave-"+h.Locale.YearLabel(d.FiscalYear)+".xlsx", format.Sheet{
		Name:   "Leave",
		Header: header,
		Rows:   rows,
		Footer: footer,
	})
}

// ServeLeaveAudit handles GET /reports/leave/audit: records with inverted
// ranges, overlaps, day count mismatches or unknown leave types.
func (h *Handler) ServeLeaveAudit(w http.ResponseWriter, r *http.Request) {
	var records []models.LeaveRecord
	ok := h.build(w, r, "leave_audit", func(ctx context.Context) (err error) {
		records, err = h.Queries.LeaveRecords(ctx, "")
		return
	})
	if !ok {
		return
	}
	issues := rollup.AuditLeave(records, h.loc())
	if issues == nil {
		issues = []rollup.LeaveIssue{}
	}
	uierrors.OK(w, issues, len(issues) == 0)
}

type leaveRecordRow struct {
	ID        string `json:"id"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
	Reason    string `json:"reason,omitempty"`
}

type subjectLeaveData struct {
	format.LeaveReport
	Records        []leaveRecordRow `json:"records"`
	AvailableYears []int            `json:"availableYears"`
}

// ServeSubjectLeave handles GET /reports/leave/subjects/{subjectID}?fy=:
// one teacher's leave by type with the records behind it.
func (h *Handler) ServeSubjectLeave(w http.ResponseWriter, r *http.Request) {
	p := inputval.SubjectLeaveParams{SubjectID: chi.URLParam(r, "subjectID")}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad subject id", err, err.Error())
		return
	}
	fy, ok := h.fiscalYear(w, r)
	if !ok {
		return
	}

	var (
		teacher *models.TeacherProfile
		records []models.LeaveRecord
	)
	ok = h.build(w, r, "subject_leave", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { teacher, err = h.Queries.Teacher(gctx, p.SubjectID); return })
		g.Go(func() (err error) { records, err = h.Queries.LeaveRecords(gctx, p.SubjectID); return })
		return g.Wait()
	})
	if !ok {
		return
	}
	if teacher == nil {
		h.ErrLog.NotFound(w, "Teacher not found.")
		return
	}

	tally := rollup.GroupLeaveByTypeAndSubject(records, fy, h.loc(), p.SubjectID)[p.SubjectID]
	d := subjectLeaveData{
		LeaveReport:    format.BuildLeaveReport(teacher.ID, teacher.DisplayName(), tally, fy, h.Locale, true),
		Records:        []leaveRecordRow{},
		AvailableYears: rollup.AvailableFiscalYears(records, h.loc()),
	}
	for _, rec := range rollup.RecordsInFiscalYear(records, p.SubjectID, fy, h.loc()) {
		d.Records = append(d.Records, leaveRecordRow{
			ID:        rec.ID,
			LeaveType: rec.LeaveType,
			StartDate: format.FormatDate(rec.StartDate, h.Locale),
			EndDate:   format.FormatDate(rec.EndDate, h.Locale),
			Days:      rec.DayCount,
			Reason:    rec.Reason,
		})
	}
	uierrors.OK(w, d, len(d.Records) == 0)
}
