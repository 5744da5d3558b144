// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"time"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
	"go.uber.org/zap"
)

// Source is the live school snapshot the overview reads from.
type Source interface {
	Current() (reportqueries.School, snapshot.State, error)
	Updated() time.Time
}

type Handler struct {
	Live   Source
	Locale format.Locale
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Now    func() time.Time
}

func NewHandler(live Source, locale format.Locale, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Live:   live,
		Locale: locale,
		Log:    logger,
		ErrLog: errLog,
		Now:    time.Now,
	}
}

type overview struct {
	Teachers        int                `json:"teachers"`
	Staff           int                `json:"staff"`
	Students        rollup.LevelCounts `json:"students"`
	Unclassified    int                `json:"unclassifiedStudents"`
	Courses         int                `json:"courses"`
	QuizAttempts    int                `json:"quizAttempts"`
	Enrollments     int                `json:"enrollments"`
	FiscalYear      int                `json:"fiscalYear"`
	FiscalYearLabel string             `json:"fiscalYearLabel"`
	LeaveDays       int                `json:"leaveDays"`
	LeaveByType     []format.LeaveRow  `json:"leaveByType"`
	Stale           bool               `json:"stale"`
	Updated         time.Time          `json:"updated"`
}

// ServeLive handles GET /dashboard/live. It never touches the store; it
// answers from whatever the watcher loaded last.
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	school, state, err := h.Live.Current()
	switch {
	case state == snapshot.Loading:
		uierrors.Loading(w)
		return
	case state == snapshot.Failed && school.LoadedAt.IsZero():
		h.ErrLog.LogStoreError(w, r, "live overview unavailable", err)
		return
	}
	if school.Empty() {
		uierrors.OK(w, nil, true)
		return
	}
	uierrors.OK(w, h.build(school, state == snapshot.Failed), false)
}

func (h *Handler) build(s reportqueries.School, stale bool) overview {
	loc := h.Locale.Location()
	fy := rollup.FiscalYearOf(h.Now().In(loc))

	students := rollup.GroupStudentsByTeacherAndLevel(s.Students, s.Teachers)

	combined := rollup.NewLeaveTally()
	for _, tally := range rollup.GroupLeaveByTypeAndSubject(s.Leave, fy, loc) {
		for lt, n := range tally {
			combined[lt] += n
		}
	}
	leave := format.BuildLeaveReport("", "", combined, fy, h.Locale, false)

	return overview{
		Teachers:        len(s.Teachers),
		Staff:           len(s.Staff),
		Students:        students.GrandTotal.Plus(students.Unclassified),
		Unclassified:    students.Unclassified.Total,
		Courses:         len(s.Courses),
		QuizAttempts:    len(s.Quiz),
		Enrollments:     len(s.Enrollments),
		FiscalYear:      fy,
		FiscalYearLabel: leave.FiscalYearLabel,
		LeaveDays:       leave.Total,
		LeaveByType:     leave.Rows,
		Stale:           stale,
		Updated:         h.Live.Updated(),
	}
}
