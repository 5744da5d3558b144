package rollup_test

import (
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

func TestAuditLeave(t *testing.T) {
	inverted := leave("inv", "t1", models.LeaveSick, day(2025, 3, 5), day(2025, 3, 1))
	mismatch := leave("mis", "t2", models.LeaveSick, day(2025, 4, 1), day(2025, 4, 3))
	mismatch.DayCount = 7

	records := []models.LeaveRecord{
		leave("a", "t1", models.LeaveSick, day(2025, 1, 1), day(2025, 1, 5)),
		leave("b", "t1", models.LeavePersonal, day(2025, 1, 5), day(2025, 1, 6)),
		leave("c", "t1", models.LeaveVacation, day(2025, 1, 7), day(2025, 1, 7)),
		inverted,
		mismatch,
		leave("odd", "t3", "ลาเที่ยว", day(2025, 5, 1), day(2025, 5, 1)),
	}

	issues := rollup.AuditLeave(records, time.UTC)

	found := map[rollup.IssueKind][]string{}
	for _, is := range issues {
		found[is.Kind] = append(found[is.Kind], is.RecordID)
	}

	if got := found[rollup.IssueOverlap]; len(got) != 1 || got[0] != "b" {
		t.Errorf("overlap: got %v, want [b]", got)
	}
	if got := found[rollup.IssueInvertedRange]; len(got) != 1 || got[0] != "inv" {
		t.Errorf("inverted: got %v, want [inv]", got)
	}
	if got := found[rollup.IssueDayCountMismatch]; len(got) != 1 || got[0] != "mis" {
		t.Errorf("mismatch: got %v, want [mis]", got)
	}
	if got := found[rollup.IssueUnknownLeaveType]; len(got) != 1 || got[0] != "odd" {
		t.Errorf("unknown type: got %v, want [odd]", got)
	}
}

func TestAuditLeave_CleanData(t *testing.T) {
	records := []models.LeaveRecord{
		leave("a", "t1", models.LeaveSick, day(2025, 1, 1), day(2025, 1, 2)),
		leave("b", "t1", models.LeaveSick, day(2025, 1, 3), day(2025, 1, 3)),
		leave("c", "t2", models.LeaveSick, day(2025, 1, 1), day(2025, 1, 2)),
	}
	if issues := rollup.AuditLeave(records, time.UTC); len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
}
