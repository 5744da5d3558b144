// internal/app/features/reports/students.go
package reports

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) studentTable(w http.ResponseWriter, r *http.Request) (format.TeacherStudentTable, bool) {
	var teachers, staff []models.TeacherProfile
	var students []models.StudentProfile
	ok := h.build(w, r, "students_by_teacher", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { teachers, err = h.Queries.Teachers(gctx); return })
		g.Go(func() (err error) { staff, err = h.Queries.Staff(gctx); return })
		g.Go(func() (err error) { students, err = h.Queries.Students(gctx); return })
		return g.Wait()
	})
	if !ok {
		return format.TeacherStudentTable{}, false
	}
	ru := rollup.GroupStudentsByTeacherAndLevel(students, teachers)
	return format.BuildTeacherStudentTable(ru, teachers, staff), true
}

// ServeStudentsByTeacher handles GET /reports/students/by-teacher.
func (h *Handler) ServeStudentsByTeacher(w http.ResponseWriter, r *http.Request) {
	t, ok := h.studentTable(w, r)
	if !ok {
		return
	}
	empty := len(t.Rows) == 0 && t.Unclassified.Total == 0 && len(t.Staff) == 0
	uierrors.OK(w, t, empty)
}

func levelCells(c rollup.LevelCounts) []any {
	return []any{c.Primary, c.LowerSecondary, c.UpperSecondary, c.Other, c.Total}
}

// ServeStudentsByTeacherXLSX handles GET /reports/students/by-teacher.xlsx.
func (h *Handler) ServeStudentsByTeacherXLSX(w http.ResponseWriter, r *http.Request) {
	t, ok := h.studentTable(w, r)
	if !ok {
		return
	}
	header := []string{"Teacher", models.LevelPrimary, models.LevelLowerSecondary, models.LevelUpperSecondary, "Other", "Total"}

	rows := make([][]any, 0, len(t.Rows)+1)
	for _, row := range t.Rows {
		rows = append(rows, append([]any{row.TeacherName}, levelCells(row.LevelCounts)...))
	}
	if t.Unclassified.Total > 0 {
		rows = append(rows, append([]any{"Unclassified"}, levelCells(t.Unclassified)...))
	}

	staffRows := make([][]any, 0, len(t.Staff))
	for _, s := range t.Staff {
		staffRows = append(staffRows, []any{s.Name, s.Role})
	}

	h.writeWorkbook(w, "students-by-teacher.xlsx",
		format.Sheet{
			Name:   "Students",
			Header: header,
			Rows:   rows,
			Footer: append([]any{"Total"}, levelCells(t.Footer)...),
		},
		format.Sheet{Name: "Staff", Header: []string{"Name", "Role"}, Rows: staffRows},
	)
}

type enrollmentData struct {
	Rows   []format.EnrollmentRow `json:"rows"`
	Footer rollup.LevelCounts     `json:"footer"`
	Course map[string]int         `json:"byCourse"`
}

// ServeEnrollmentsByTeacher handles GET /reports/enrollments/by-teacher:
// distinct enrolled students per course teacher and level.
func (h *Handler) ServeEnrollmentsByTeacher(w http.ResponseWriter, r *http.Request) {
	var enrollments []models.EnrollmentFact
	var students []models.StudentProfile
	ok := h.build(w, r, "enrollments_by_teacher", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { enrollments, err = h.Queries.Enrollments(gctx); return })
		g.Go(func() (err error) { students, err = h.Queries.Students(gctx); return })
		return g.Wait()
	})
	if !ok {
		return
	}
	rows, footer := format.BuildEnrollmentTable(rollup.GroupEnrollmentsByTeacher(enrollments, students))
	uierrors.OK(w, enrollmentData{
		Rows:   rows,
		Footer: footer,
		Course: rollup.CountEnrollmentsByCourse(enrollments),
	}, len(rows) == 0)
}
