// internal/app/reporting/format/students.go
package format

import (
	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// TeacherStudentRow is one teacher and their students by level.
type TeacherStudentRow struct {
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	rollup.LevelCounts
}

// StaffRow lists an administrator or director.
type StaffRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// TeacherStudentTable is the students-per-teacher report.
type TeacherStudentTable struct {
	Rows         []TeacherStudentRow `json:"rows"`
	Footer       rollup.LevelCounts  `json:"footer"`
	Unclassified rollup.LevelCounts  `json:"unclassified"`
	Staff        []StaffRow          `json:"staff"`
}

// BuildTeacherStudentTable turns a roll-up into rows sorted by teacher name.
// The footer is the elementwise sum of the rows. staff is listed separately
// and carries no counts.
func BuildTeacherStudentTable(r rollup.StudentRollup, teachers []models.TeacherProfile, staff []models.TeacherProfile) TeacherStudentTable {
	t := TeacherStudentTable{
		Rows:         make([]TeacherStudentRow, 0, len(teachers)),
		Unclassified: r.Unclassified,
		Staff:        make([]StaffRow, 0, len(staff)),
	}
	for _, tp := range teachers {
		c, ok := r.ByTeacher[tp.ID]
		if !ok {
			continue
		}
		t.Rows = append(t.Rows, TeacherStudentRow{TeacherID: tp.ID, TeacherName: tp.DisplayName(), LevelCounts: c})
		t.Footer = t.Footer.Plus(c)
	}
	sortByName(t.Rows, func(row TeacherStudentRow) (string, string) { return row.TeacherName, row.TeacherID })

	for _, s := range staff {
		t.Staff = append(t.Staff, StaffRow{ID: s.ID, Name: s.DisplayName(), Role: s.Role})
	}
	sortByName(t.Staff, func(row StaffRow) (string, string) { return row.Name, row.ID })
	return t
}

// EnrollmentRow is one course teacher with enrolled students by level.
type EnrollmentRow struct {
	TeacherName string `json:"teacherName"`
	rollup.LevelCounts
}

// BuildEnrollmentTable sorts enrollment counts by teacher name and adds a
// footer.
func BuildEnrollmentTable(byTeacher map[string]rollup.LevelCounts) ([]EnrollmentRow, rollup.LevelCounts) {
	rows := make([]EnrollmentRow, 0, len(byTeacher))
	var footer rollup.LevelCounts
	for name, c := range byTeacher {
		rows = append(rows, EnrollmentRow{TeacherName: name, LevelCounts: c})
		footer = footer.Plus(c)
	}
	sortByName(rows, func(r EnrollmentRow) (string, string) { return r.TeacherName, "" })
	return rows, footer
}
