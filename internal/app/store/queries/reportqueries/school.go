package reportqueries

import (
	"context"
	"time"

	"github.com/dalemusser/schoolreports/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// School is a point-in-time copy of every fact the live overview needs.
type School struct {
	Teachers    []models.TeacherProfile
	Staff       []models.TeacherProfile
	Students    []models.StudentProfile
	Leave       []models.LeaveRecord
	Courses     []models.CourseFact
	Quiz        []models.QuizHistoryFact
	Enrollments []models.EnrollmentFact
	LoadedAt    time.Time
}

// LoadSchool reads all collections concurrently. The first failure cancels
// the rest and is returned.
func (q *Queries) LoadSchool(ctx context.Context) (School, error) {
	var s School
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { s.Teachers, err = q.Teachers(gctx); return })
	g.Go(func() (err error) { s.Staff, err = q.Staff(gctx); return })
	g.Go(func() (err error) { s.Students, err = q.Students(gctx); return })
	g.Go(func() (err error) { s.Leave, err = q.LeaveRecords(gctx, ""); return })
	g.Go(func() (err error) { s.Courses, err = q.Courses(gctx); return })
	g.Go(func() (err error) { s.Quiz, err = q.QuizHistory(gctx); return })
	g.Go(func() (err error) { s.Enrollments, err = q.Enrollments(gctx); return })

	if err := g.Wait(); err != nil {
		return School{}, err
	}
	s.LoadedAt = time.Now()
	return s, nil
}

// Empty reports whether nothing has been recorded yet.
func (s School) Empty() bool {
	return len(s.Teachers) == 0 && len(s.Students) == 0 && len(s.Leave) == 0 &&
		len(s.Courses) == 0 && len(s.Quiz) == 0
}
