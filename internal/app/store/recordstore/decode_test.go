package recordstore_test

import (
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

func TestDecodeAll_LeaveRecords(t *testing.T) {
	start := time.Date(2024, 10, 3, 0, 0, 0, 0, time.UTC)
	docs := []recordstore.Document{{
		"_id":       "r1",
		"teacherId": "t1",
		"leaveType": models.LeaveSick,
		"startDate": start,
		"endDate":   start.AddDate(0, 0, 2),
		"leaveDays": int64(3),
	}}

	recs, err := recordstore.DecodeAll[models.LeaveRecord](docs)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	r := recs[0]
	if r.ID != "r1" || r.SubjectID != "t1" || r.DayCount != 3 {
		t.Errorf("decoded %+v", r)
	}
	if !r.StartDate.Equal(start) {
		t.Errorf("StartDate: got %v, want %v", r.StartDate, start)
	}
}

func TestDecode_OptionalTeacherID(t *testing.T) {
	s, err := recordstore.Decode[models.StudentProfile](recordstore.Document{"_id": "s1", "fullName": "A"})
	if err != nil {
		t.Fatal(err)
	}
	if s.TeacherID != nil {
		t.Errorf("TeacherID: got %v, want nil", *s.TeacherID)
	}
}
