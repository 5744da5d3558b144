// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures seeds a record store with school data for tests.
type Fixtures struct {
	rs recordstore.Store
	t  *testing.T
}

// NewFixtures creates a Fixtures bound to rs.
func NewFixtures(t *testing.T, rs recordstore.Store) *Fixtures {
	t.Helper()
	return &Fixtures{rs: rs, t: t}
}

// Store returns the underlying record store.
func (f *Fixtures) Store() recordstore.Store {
	return f.rs
}

func (f *Fixtures) put(collection, id string, doc recordstore.Document) {
	f.t.Helper()
	ctx, cancel := TestContext()
	defer cancel()
	if err := f.rs.Upsert(ctx, collection, id, doc, false); err != nil {
		f.t.Fatalf("seed %s/%s: %v", collection, id, err)
	}
}

// Date returns midnight of the given day in UTC.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Teacher seeds a staff user with role "teacher".
func (f *Fixtures) Teacher(id, name string) models.TeacherProfile {
	f.t.Helper()
	f.put(models.CollUsers, id, recordstore.Document{
		"fullName": name,
		"email":    id + "@school.test",
		"role":     models.RoleTeacher,
	})
	return models.TeacherProfile{ID: id, FullName: name, Email: id + "@school.test", Role: models.RoleTeacher}
}

// Staff seeds a user with the given staff role (admin or director).
func (f *Fixtures) Staff(id, name, role string) models.TeacherProfile {
	f.t.Helper()
	f.put(models.CollUsers, id, recordstore.Document{"fullName": name, "role": role})
	return models.TeacherProfile{ID: id, FullName: name, Role: role}
}

// Student seeds a student. An empty teacherID leaves the field unset.
func (f *Fixtures) Student(id, name, level, teacherID string) models.StudentProfile {
	f.t.Helper()
	doc := recordstore.Document{
		"fullName":       name,
		"email":          id + "@school.test",
		"role":           models.RoleStudent,
		"educationLevel": level,
	}
	s := models.StudentProfile{ID: id, FullName: name, Email: id + "@school.test", EducationLevel: level}
	if teacherID != "" {
		doc["teacherId"] = teacherID
		tid := teacherID
		s.TeacherID = &tid
	}
	f.put(models.CollUsers, id, doc)
	return s
}

// Leave seeds a teacher leave record, computing leaveDays inclusively.
func (f *Fixtures) Leave(id, teacherID, leaveType string, start, end time.Time) {
	f.t.Helper()
	days := 0
	if !start.After(end) {
		days = int(end.Sub(start).Hours()/24) + 1
	}
	f.put(models.CollTeacherLeaveRecords, id, recordstore.Document{
		"teacherId": teacherID,
		"leaveType": leaveType,
		"startDate": start,
		"endDate":   end,
		"leaveDays": days,
	})
}

// Course seeds a course with its exam.
func (f *Fixtures) Course(id, title, examID, level string) models.CourseFact {
	f.t.Helper()
	f.put(models.CollCourses, id, recordstore.Document{
		"title":          title,
		"examId":         examID,
		"educationLevel": level,
	})
	return models.CourseFact{ID: id, Title: title, ExamID: examID, EducationLevel: level}
}

// Attempt seeds a quiz history entry.
func (f *Fixtures) Attempt(id, studentID, examID string, score, total int, completedAt time.Time) {
	f.t.Helper()
	f.put(models.CollQuizHistory, id, recordstore.Document{
		"studentId":      studentID,
		"examId":         examID,
		"score":          score,
		"totalQuestions": total,
		"completedAt":    completedAt,
	})
}

// Doc seeds an arbitrary document.
func (f *Fixtures) Doc(collection, id string, doc recordstore.Document) {
	f.t.Helper()
	f.put(collection, id, doc)
}
