// Package reportqueries loads the read-only facts the reports are built
// from. Every function returns a full snapshot of the matching documents;
// the roll-up packages do the grouping in memory.
package reportqueries

import (
	"context"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"go.uber.org/zap"
)

// Queries reads report facts from a record store.
type Queries struct {
	rs  recordstore.Store
	log *zap.Logger
}

// New returns Queries over rs.
func New(rs recordstore.Store, logger *zap.Logger) *Queries {
	return &Queries{rs: rs, log: logger}
}

// decodeAll decodes docs into T, logging and skipping documents whose
// fields have the wrong shape. Legacy imports contain a few of those and
// one bad record should not hide a whole report.
func decodeAll[T any](log *zap.Logger, coll string, docs []recordstore.Document) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := recordstore.Decode[T](d)
		if err != nil {
			log.Warn("skipping malformed document",
				zap.String("collection", coll),
				zap.String("id", d.ID()),
				zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

func byName() []recordstore.Order {
	return []recordstore.Order{{Field: "fullName"}}
}

// Teachers returns users with role teacher, ordered by name.
func (q *Queries) Teachers(ctx context.Context) ([]models.TeacherProfile, error) {
	docs, err := q.rs.Query(ctx, models.CollUsers,
		[]recordstore.Filter{recordstore.Where("role", models.RoleTeacher)}, byName())
	if err != nil {
		return nil, err
	}
	return decodeAll[models.TeacherProfile](q.log, models.CollUsers, docs), nil
}

// Teacher returns one teacher, or nil when the id is unknown or the user is
// not a teacher.
func (q *Queries) Teacher(ctx context.Context, id string) (*models.TeacherProfile, error) {
	doc, err := q.rs.Get(ctx, models.CollUsers, id)
	if err != nil || doc == nil {
		return nil, err
	}
	t, err := recordstore.Decode[models.TeacherProfile](doc)
	if err != nil || t.Role != models.RoleTeacher {
		return nil, nil
	}
	return &t, nil
}

// Staff returns administrators and directors.
func (q *Queries) Staff(ctx context.Context) ([]models.TeacherProfile, error) {
	docs, err := q.rs.Query(ctx, models.CollUsers, []recordstore.Filter{{
		Field: "role", Op: recordstore.In, Value: []any{models.RoleAdmin, models.RoleDirector},
	}}, byName())
	if err != nil {
		return nil, err
	}
	return decodeAll[models.TeacherProfile](q.log, models.CollUsers, docs), nil
}

// Students returns every student.
func (q *Queries) Students(ctx context.Context) ([]models.StudentProfile, error) {
	docs, err := q.rs.Query(ctx, models.CollUsers,
		[]recordstore.Filter{recordstore.Where("role", models.RoleStudent)}, byName())
	if err != nil {
		return nil, err
	}
	return decodeAll[models.StudentProfile](q.log, models.CollUsers, docs), nil
}

// Student returns one student, or nil when the id is unknown or the user is
// not a student.
func (q *Queries) Student(ctx context.Context, id string) (*models.StudentProfile, error) {
	doc, err := q.rs.Get(ctx, models.CollUsers, id)
	if err != nil || doc == nil {
		return nil, err
	}
	if role, _ := doc["role"].(string); role != models.RoleStudent {
		return nil, nil
	}
	s, err := recordstore.Decode[models.StudentProfile](doc)
	if err != nil {
		return nil, nil
	}
	return &s, nil
}

// LeaveRecords returns teacher leave ordered by start date. A non-empty
// subjectID limits the result to that teacher; that query needs the
// teacherId+startDate index.
func (q *Queries) LeaveRecords(ctx context.Context, subjectID string) ([]models.LeaveRecord, error) {
	var filters []recordstore.Filter
	if subjectID != "" {
		filters = append(filters, recordstore.Where("teacherId", subjectID))
	}
	docs, err := q.rs.Query(ctx, models.CollTeacherLeaveRecords, filters,
		[]recordstore.Order{{Field: "startDate"}})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.LeaveRecord](q.log, models.CollTeacherLeaveRecords, docs), nil
}

// Courses returns every course ordered by title.
func (q *Queries) Courses(ctx context.Context) ([]models.CourseFact, error) {
	docs, err := q.rs.Query(ctx, models.CollCourses, nil, []recordstore.Order{{Field: "title"}})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.CourseFact](q.log, models.CollCourses, docs), nil
}

// QuizHistory returns every quiz attempt, oldest first.
func (q *Queries) QuizHistory(ctx context.Context) ([]models.QuizHistoryFact, error) {
	docs, err := q.rs.Query(ctx, models.CollQuizHistory, nil, []recordstore.Order{{Field: "completedAt"}})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.QuizHistoryFact](q.log, models.CollQuizHistory, docs), nil
}

// Enrollments returns every course enrollment.
func (q *Queries) Enrollments(ctx context.Context) ([]models.EnrollmentFact, error) {
	docs, err := q.rs.Query(ctx, models.CollEnrolledCourses, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.EnrollmentFact](q.log, models.CollEnrolledCourses, docs), nil
}

// Exams returns exam documents keyed by id. They are kept raw because the
// certificate overlay reads them by alias.
func (q *Queries) Exams(ctx context.Context) (map[string]map[string]any, error) {
	docs, err := q.rs.Query(ctx, models.CollExams, nil, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]any, len(docs))
	for _, d := range docs {
		out[d.ID()] = d
	}
	return out, nil
}
