// internal/app/reporting/rollup/leave.go
package rollup

import (
	"time"

	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// LeaveTally maps each leave type to a day count.
type LeaveTally map[string]int

// NewLeaveTally returns a tally with every leave type present at zero.
func NewLeaveTally() LeaveTally {
	t := make(LeaveTally, len(models.LeaveTypes))
	for _, lt := range models.LeaveTypes {
		t[lt] = 0
	}
	return t
}

// Total sums all buckets.
func (t LeaveTally) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// GroupLeaveByTypeAndSubject totals leave days per subject and leave type
// for fiscal year fy, keyed by record start date.
//
// Every subject that has a record in any year, and every id in subjects,
// gets a tally with all leave types present, so a subject with no leave in
// fy reports zeros rather than being absent. Records with an unknown leave
// type are not counted; AuditLeave reports them.
func GroupLeaveByTypeAndSubject(records []models.LeaveRecord, fy int, loc *time.Location, subjects ...string) map[string]LeaveTally {
	out := map[string]LeaveTally{}
	for _, id := range subjects {
		if _, ok := out[id]; !ok {
			out[id] = NewLeaveTally()
		}
	}
	for _, r := range records {
		tally, ok := out[r.SubjectID]
		if !ok {
			tally = NewLeaveTally()
			out[r.SubjectID] = tally
		}
		if !InFiscalYear(r.StartDate, fy, loc) {
			continue
		}
		if _, known := tally[r.LeaveType]; !known {
			continue
		}
		tally[r.LeaveType] += r.DayCount
	}
	return out
}

// AvailableFiscalYears lists the fiscal years that have at least one record,
// newest first.
func AvailableFiscalYears(records []models.LeaveRecord, loc *time.Location) []int {
	ts := make([]time.Time, 0, len(records))
	for _, r := range records {
		ts = append(ts, r.StartDate)
	}
	return fiscalYearsOf(ts, loc)
}

// RecordsInFiscalYear returns the records of one subject whose start date is
// in fy, in input order. An empty subjectID selects every subject.
func RecordsInFiscalYear(records []models.LeaveRecord, subjectID string, fy int, loc *time.Location) []models.LeaveRecord {
	var out []models.LeaveRecord
	for _, r := range records {
		if subjectID != "" && r.SubjectID != subjectID {
			continue
		}
		if InFiscalYear(r.StartDate, fy, loc) {
			out = append(out, r)
		}
	}
	return out
}

// TeacherLeaveTotal is one row of the all-time leave summary.
type TeacherLeaveTotal struct {
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	Days        int    `json:"days"`
	Records     int    `json:"records"`
}

// TeacherLeaveTotals sums every recorded leave day per teacher across all
// years. Teachers appear in input order; those without leave report zero.
// Records for ids not in teachers are ignored.
func TeacherLeaveTotals(teachers []models.TeacherProfile, records []models.LeaveRecord) []TeacherLeaveTotal {
	idx := make(map[string]int, len(teachers))
	out := make([]TeacherLeaveTotal, len(teachers))
	for i, t := range teachers {
		idx[t.ID] = i
		out[i] = TeacherLeaveTotal{TeacherID: t.ID, TeacherName: t.DisplayName()}
	}
	for _, r := range records {
		i, ok := idx[r.SubjectID]
		if !ok {
			continue
		}
		out[i].Days += r.DayCount
		out[i].Records++
	}
	return out
}
