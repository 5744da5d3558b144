// internal/app/features/reports/quiz.go
package reports

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/reporting/xref"
	"github.com/dalemusser/schoolreports/internal/app/system/inputval"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) quizMatrix(w http.ResponseWriter, r *http.Request) (xref.QuizMatrix, bool) {
	p := inputval.QuizParams{TeacherID: query.Get(r, "teacher"), Level: query.Get(r, "level")}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad quiz params", err, err.Error())
		return xref.QuizMatrix{}, false
	}

	var (
		students []models.StudentProfile
		courses  []models.CourseFact
		history  []models.QuizHistoryFact
	)
	ok := h.build(w, r, "quiz_matrix", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { students, err = h.Queries.Students(gctx); return })
		g.Go(func() (err error) { courses, err = h.Queries.Courses(gctx); return })
		g.Go(func() (err error) { history, err = h.Queries.QuizHistory(gctx); return })
		return g.Wait()
	})
	if !ok {
		return xref.QuizMatrix{}, false
	}
	m := xref.BuildQuizMatrix(students, courses, history, xref.QuizFilter{TeacherID: p.TeacherID, Level: p.Level})
	if m.Courses == nil {
		m.Courses = []models.CourseFact{}
	}
	return m, true
}

// ServeQuiz handles GET /reports/quiz?teacher=&level=: students by courses
// with "score/total" cells, "-" where the student has no attempt.
func (h *Handler) ServeQuiz(w http.ResponseWriter, r *http.Request) {
	m, ok := h.quizMatrix(w, r)
	if !ok {
		return
	}
	uierrors.OK(w, m, len(m.Rows) == 0)
}

// ServeQuizXLSX handles GET /reports/quiz.xlsx.
func (h *Handler) ServeQuizXLSX(w http.ResponseWriter, r *http.Request) {
	m, ok := h.quizMatrix(w, r)
	if !ok {
		return
	}
	header := []string{"Student", "Level"}
	for _, c := range m.Courses {
		header = append(header, c.Title)
	}
	rows := make([][]any, 0, len(m.Rows))
	for _, row := range m.Rows {
		cells := []any{row.StudentName, row.Level}
		for _, c := range row.Results {
			cells = append(cells, c.Score)
		}
		rows = append(rows, cells)
	}
	h.writeWorkbook(w, "quiz-results.xlsx", format.Sheet{Name: "Quiz", Header: header, Rows: rows})
}
