// internal/app/reporting/rollup/audit.go
package rollup

import (
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// IssueKind classifies a leave data problem.
type IssueKind string

const (
	IssueInvertedRange    IssueKind = "inverted_range"
	IssueOverlap          IssueKind = "overlap"
	IssueDayCountMismatch IssueKind = "day_count_mismatch"
	IssueUnknownLeaveType IssueKind = "unknown_leave_type"
)

// LeaveIssue is one problem found by AuditLeave.
type LeaveIssue struct {
	Kind          IssueKind `json:"kind"`
	RecordID      string    `json:"recordId"`
	SubjectID     string    `json:"subjectId"`
	OtherRecordID string    `json:"otherRecordId,omitempty"`
	Detail        string    `json:"detail"`
}

// AuditLeave reports leave records that the totals would otherwise count
// silently: end before start, ranges overlapping another record of the same
// subject, stored day counts that disagree with the dates, and leave types
// outside the fixed list. Issues are ordered by subject, then record start.
func AuditLeave(records []models.LeaveRecord, loc *time.Location) []LeaveIssue {
	bySubject := map[string][]models.LeaveRecord{}
	var subjects []string
	for _, r := range records {
		if _, ok := bySubject[r.SubjectID]; !ok {
			subjects = append(subjects, r.SubjectID)
		}
		bySubject[r.SubjectID] = append(bySubject[r.SubjectID], r)
	}
	sort.Strings(subjects)

	var issues []LeaveIssue
	for _, sid := range subjects {
		recs := bySubject[sid]
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].StartDate.Before(recs[j].StartDate) })

		var prev *models.LeaveRecord
		for i := range recs {
			r := recs[i]
			if !models.IsLeaveType(r.LeaveType) {
				issues = append(issues, LeaveIssue{
					Kind: IssueUnknownLeaveType, RecordID: r.ID, SubjectID: sid,
					Detail: fmt.Sprintf("leave type %q is not recognised", r.LeaveType),
				})
			}
			if r.StartDate.After(r.EndDate) {
				issues = append(issues, LeaveIssue{
					Kind: IssueInvertedRange, RecordID: r.ID, SubjectID: sid,
					Detail: "end date is before start date",
				})
				continue
			}
			if want := InclusiveDays(r.StartDate, r.EndDate, loc); want != r.DayCount {
				issues = append(issues, LeaveIssue{
					Kind: IssueDayCountMismatch, RecordID: r.ID, SubjectID: sid,
					Detail: fmt.Sprintf("stored %d days, dates span %d", r.DayCount, want),
				})
			}
			if prev != nil && InclusiveDays(r.StartDate, prev.EndDate, loc) > 0 {
				issues = append(issues, LeaveIssue{
					Kind: IssueOverlap, RecordID: r.ID, SubjectID: sid, OtherRecordID: prev.ID,
					Detail: "leave range overlaps an earlier record",
				})
			}
			if prev == nil || r.EndDate.After(prev.EndDate) {
				prev = &recs[i]
			}
		}
	}
	return issues
}
