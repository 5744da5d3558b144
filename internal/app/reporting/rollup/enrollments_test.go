package rollup_test

import (
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

func TestGroupEnrollmentsByTeacher(t *testing.T) {
	students := []models.StudentProfile{
		{ID: "s1", EducationLevel: models.LevelPrimary},
		{ID: "s2", EducationLevel: models.LevelUpperSecondary},
	}
	enrollments := []models.EnrollmentFact{
		{StudentID: "s1", CourseID: "c1", TeacherName: "ครูเอ"},
		{StudentID: "s1", CourseID: "c2", TeacherName: "ครูเอ"},
		{StudentID: "s2", CourseID: "c1", TeacherName: "ครูเอ "},
		{StudentID: "s2", CourseID: "c3", TeacherName: "ครูบี"},
		{StudentID: "ghost", CourseID: "c3", TeacherName: "ครูบี"},
	}

	got := rollup.GroupEnrollmentsByTeacher(enrollments, students)

	if got["ครูเอ"] != (rollup.LevelCounts{Primary: 1, UpperSecondary: 1, Total: 2}) {
		t.Errorf("ครูเอ: got %+v", got["ครูเอ"])
	}
	if got["ครูบี"] != (rollup.LevelCounts{UpperSecondary: 1, Total: 1}) {
		t.Errorf("ครูบี: got %+v", got["ครูบี"])
	}
}

func TestCountEnrollmentsByCourse(t *testing.T) {
	enrollments := []models.EnrollmentFact{
		{StudentID: "s1", CourseID: "c1"},
		{StudentID: "s1", CourseID: "c1"},
		{StudentID: "s2", CourseID: "c1"},
		{StudentID: "s2", CourseID: "c2"},
	}
	got := rollup.CountEnrollmentsByCourse(enrollments)
	if got["c1"] != 2 || got["c2"] != 1 {
		t.Errorf("got %v", got)
	}
}
