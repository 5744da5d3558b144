// internal/app/reporting/rollup/fiscal.go
//
// Package rollup groups snapshot records into report totals. Every function
// is pure: it takes a full snapshot and returns fresh values.
package rollup

import (
	"sort"
	"time"
)

// FiscalYearOf returns the fiscal year t falls in, named by the Gregorian
// year it ends in. October through December belong to the next year.
// The month is read in t's own location.
func FiscalYearOf(t time.Time) int {
	if t.Month() >= time.October {
		return t.Year() + 1
	}
	return t.Year()
}

// FiscalWindow returns the half-open interval [start, end) of fiscal year fy:
// 1 October of fy-1 up to 1 October of fy. A nil loc means UTC.
func FiscalWindow(fy int, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start = time.Date(fy-1, time.October, 1, 0, 0, 0, 0, loc)
	end = time.Date(fy, time.October, 1, 0, 0, 0, 0, loc)
	return start, end
}

// InFiscalYear reports whether t lies in fiscal year fy as seen from loc.
func InFiscalYear(t time.Time, fy int, loc *time.Location) bool {
	start, end := FiscalWindow(fy, loc)
	return !t.Before(start) && t.Before(end)
}

// InclusiveDays counts calendar days from start to end, both included, using
// the dates as seen from loc. It returns 0 when start is after end.
func InclusiveDays(start, end time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	s := civil(start.In(loc))
	e := civil(end.In(loc))
	if s.After(e) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// fiscalYearsOf returns the distinct fiscal years of ts, newest first.
func fiscalYearsOf(ts []time.Time, loc *time.Location) []int {
	if loc == nil {
		loc = time.UTC
	}
	seen := map[int]bool{}
	var out []int
	for _, t := range ts {
		if t.IsZero() {
			continue
		}
		fy := FiscalYearOf(t.In(loc))
		if !seen[fy] {
			seen[fy] = true
			out = append(out, fy)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
