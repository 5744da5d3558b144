// internal/app/reporting/rollup/enrollments.go
package rollup

import (
	"strings"

	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// GroupEnrollmentsByTeacher counts distinct enrolled students per course
// teacher name, split by the student's education level. Enrollments whose
// student is not in students are skipped. A blank teacher name groups
// under "".
func GroupEnrollmentsByTeacher(enrollments []models.EnrollmentFact, students []models.StudentProfile) map[string]LevelCounts {
	level := make(map[string]string, len(students))
	for _, s := range students {
		level[s.ID] = s.EducationLevel
	}

	seen := map[string]map[string]bool{}
	out := map[string]LevelCounts{}
	for _, e := range enrollments {
		lv, ok := level[e.StudentID]
		if !ok {
			continue
		}
		teacher := strings.TrimSpace(e.TeacherName)
		if seen[teacher] == nil {
			seen[teacher] = map[string]bool{}
		}
		if seen[teacher][e.StudentID] {
			continue
		}
		seen[teacher][e.StudentID] = true
		c := out[teacher]
		c.Add(lv)
		out[teacher] = c
	}
	return out
}

// CountEnrollmentsByCourse returns the number of distinct students enrolled
// in each course.
func CountEnrollmentsByCourse(enrollments []models.EnrollmentFact) map[string]int {
	seen := map[string]bool{}
	out := map[string]int{}
	for _, e := range enrollments {
		key := e.CourseID + "\x00" + e.StudentID
		if seen[key] {
			continue
		}
		seen[key] = true
		out[e.CourseID]++
	}
	return out
}
