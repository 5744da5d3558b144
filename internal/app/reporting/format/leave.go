// internal/app/reporting/format/leave.go
package format

import (
	"sort"

	"github.com/dalemusser/schoolreports/internal/app/reporting/rollup"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// LeaveRow is one leave type in a subject's report.
type LeaveRow struct {
	LeaveType string `json:"leaveType"`
	Days      int    `json:"days"`
}

// LeaveReport is one subject's leave for a fiscal year.
type LeaveReport struct {
	SubjectID       string     `json:"subjectId"`
	SubjectName     string     `json:"subjectName"`
	FiscalYear      int        `json:"fiscalYear"`
	FiscalYearLabel string     `json:"fiscalYearLabel"`
	Rows            []LeaveRow `json:"rows"`
	Total           int        `json:"total"`
}

// BuildLeaveReport lists tally in the fixed leave type order. When
// includeZero is false, types with no days are left out; the total is the
// same either way.
func BuildLeaveReport(subjectID, subjectName string, tally rollup.LeaveTally, fy int, l Locale, includeZero bool) LeaveReport {
	r := LeaveReport{
		SubjectID:       subjectID,
		SubjectName:     subjectName,
		FiscalYear:      fy,
		FiscalYearLabel: l.FiscalYearLabel(fy),
		Rows:            []LeaveRow{},
	}
	for _, lt := range models.LeaveTypes {
		days := tally[lt]
		r.Total += days
		if days == 0 && !includeZero {
			continue
		}
		r.Rows = append(r.Rows, LeaveRow{LeaveType: lt, Days: days})
	}
	return r
}

// LeaveMatrixRow is one subject across all leave types.
type LeaveMatrixRow struct {
	SubjectID   string `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Days        []int  `json:"days"`
	Total       int    `json:"total"`
}

// LeaveMatrix is subjects by leave types for one fiscal year.
type LeaveMatrix struct {
	FiscalYear      int              `json:"fiscalYear"`
	FiscalYearLabel string           `json:"fiscalYearLabel"`
	LeaveTypes      []string         `json:"leaveTypes"`
	Rows            []LeaveMatrixRow `json:"rows"`
	Footer          []int            `json:"footer"`
	Total           int              `json:"total"`
}

// BuildLeaveMatrix lays tallies out as a table with one column per leave
// type. Rows are sorted by name; ids with no profile use the id as name.
// Footer holds the column sums.
func BuildLeaveMatrix(tallies map[string]rollup.LeaveTally, teachers []models.TeacherProfile, fy int, l Locale) LeaveMatrix {
	names := make(map[string]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.DisplayName()
	}

	m := LeaveMatrix{
		FiscalYear:      fy,
		FiscalYearLabel: l.FiscalYearLabel(fy),
		LeaveTypes:      models.LeaveTypes,
		Rows:            make([]LeaveMatrixRow, 0, len(tallies)),
		Footer:          make([]int, len(models.LeaveTypes)),
	}
	for id, tally := range tallies {
		name := names[id]
		if name == "" {
			name = id
		}
		row := LeaveMatrixRow{SubjectID: id, SubjectName: name, Days: make([]int, len(models.LeaveTypes))}
		for i, lt := range models.LeaveTypes {
			row.Days[i] = tally[lt]
			row.Total += tally[lt]
			m.Footer[i] += tally[lt]
		}
		m.Total += row.Total
		m.Rows = append(m.Rows, row)
	}
	sortByName(m.Rows, func(r LeaveMatrixRow) (string, string) { return r.SubjectName, r.SubjectID })
	return m
}

// sortByName orders rows by case-folded name, then id.
func sortByName[T any](rows []T, key func(T) (name, id string)) {
	sort.SliceStable(rows, func(i, j int) bool {
		ni, ii := key(rows[i])
		nj, ij := key(rows[j])
		fi, fj := text.Fold(ni), text.Fold(nj)
		if fi != fj {
			return fi < fj
		}
		return ii < ij
	})
}
