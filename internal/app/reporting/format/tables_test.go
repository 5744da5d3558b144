package format_test

import (
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

func TestBuildLeaveReport(t *testing.T) {
	tally := rollup.NewLeaveTally()
	tally[models.LeaveSick] = 3
	tally[models.LeaveVacation] = 2
	th := format.NewThai(nil)

	r := format.BuildLeaveReport("T1", "Somchai", tally, 2025, th, false)
	if len(r.Rows) != 2 {
		t.Fatalf("rows = %+v", r.Rows)
	}
	if r.Rows[0].LeaveType != models.LeaveSick || r.Rows[1].LeaveType != models.LeaveVacation {
		t.Errorf("rows out of order: %+v", r.Rows)
	}
	if r.Total != 5 {
		t.Errorf("total = %d", r.Total)
	}
	if r.FiscalYearLabel != "ปีงบประมาณ 2568" {
		t.Errorf("label = %q", r.FiscalYearLabel)
	}

	full := format.BuildLeaveReport("T1", "Somchai", tally, 2025, th, true)
	if len(full.Rows) != len(models.LeaveTypes) || full.Total != 5 {
		t.Errorf("includeZero: rows = %d total = %d", len(full.Rows), full.Total)
	}
}

func TestBuildLeaveMatrix(t *testing.T) {
	a := rollup.NewLeaveTally()
	a[models.LeaveSick] = 2
	b := rollup.NewLeaveTally()
	b[models.LeaveSick] = 1
	b[models.LeavePersonal] = 4

	teachers := []models.TeacherProfile{
		{ID: "t2", FullName: "beta"},
		{ID: "t1", FullName: "Alpha"},
	}
	m := format.BuildLeaveMatrix(map[string]rollup.LeaveTally{"t1": b, "t2": a, "t9": rollup.NewLeaveTally()}, teachers, 2025, format.NewEnglish(nil))

	if len(m.Rows) != 3 {
		t.Fatalf("rows = %d", len(m.Rows))
	}
	if m.Rows[0].SubjectID != "t1" || m.Rows[1].SubjectID != "t2" || m.Rows[2].SubjectName != "t9" {
		t.Errorf("order = %s,%s,%s", m.Rows[0].SubjectID, m.Rows[1].SubjectID, m.Rows[2].SubjectID)
	}
	if m.Footer[0] != 3 || m.Footer[3] != 4 || m.Total != 7 {
		t.Errorf("footer = %v total = %d", m.Footer, m.Total)
	}
}

func TestBuildTeacherStudentTable(t *testing.T) {
	t1, t2 := "t1", "t2"
	teachers := []models.TeacherProfile{{ID: "t2", FullName: "Zed"}, {ID: "t1", FullName: "Amy"}}
	students := []models.StudentProfile{
		{ID: "s1", EducationLevel: models.LevelPrimary, TeacherID: &t1},
		{ID: "s2", EducationLevel: models.LevelUpperSecondary, TeacherID: &t1},
		{ID: "s3", EducationLevel: "", TeacherID: &t2},
		{ID: "s4", EducationLevel: models.LevelPrimary},
	}
	r := rollup.GroupStudentsByTeacherAndLevel(students, teachers)
	staff := []models.TeacherProfile{{ID: "d1", FullName: "Director", Role: models.RoleDirector}}

	tbl := format.BuildTeacherStudentTable(r, teachers, staff)
	if len(tbl.Rows) != 2 || tbl.Rows[0].TeacherName != "Amy" {
		t.Fatalf("rows = %+v", tbl.Rows)
	}
	if tbl.Rows[0].Total != 2 || tbl.Rows[1].Other != 1 {
		t.Errorf("counts = %+v", tbl.Rows)
	}
	if tbl.Footer != r.GrandTotal {
		t.Errorf("footer %+v != grand total %+v", tbl.Footer, r.GrandTotal)
	}
	if tbl.Unclassified.Total != 1 {
		t.Errorf("unclassified = %+v", tbl.Unclassified)
	}
	if len(tbl.Staff) != 1 || tbl.Staff[0].Role != models.RoleDirector {
		t.Errorf("staff = %+v", tbl.Staff)
	}
}

func TestBuildEnrollmentTable(t *testing.T) {
	rows, footer := format.BuildEnrollmentTable(map[string]rollup.LevelCounts{
		"Krit": {Primary: 1, Total: 1},
		"Anan": {Primary: 2, Other: 1, Total: 3},
	})
	if len(rows) != 2 || rows[0].TeacherName != "Anan" {
		t.Fatalf("rows = %+v", rows)
	}
	if footer.Total != 4 || footer.Primary != 3 {
		t.Errorf("footer = %+v", footer)
	}
}

func TestBuildCertificateRows(t *testing.T) {
	certs := []models.ResolvedCertificate{
		{ID: "c1", SchoolName: "A", IssuedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c2", SchoolName: "B", IssuedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c3", SchoolName: "A"},
	}
	en := format.NewEnglish(nil)

	all := format.BuildCertificateRows(certs, en, format.AllSchools)
	if len(all) != 3 || all[0].ID != "c2" || all[2].ID != "c3" {
		t.Fatalf("all = %+v", all)
	}
	if all[2].IssuedDate != format.NoDate {
		t.Errorf("undated IssuedDate = %q", all[2].IssuedDate)
	}

	onlyA := format.BuildCertificateRows(certs, en, "A")
	if len(onlyA) != 2 || onlyA[0].ID != "c1" {
		t.Errorf("school A = %+v", onlyA)
	}

	if got := format.Schools(certs); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Schools = %v", got)
	}
}
