// internal/app/reporting/format/viewstats.go
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dalemusser/schoolreports/internal/app/system/pagenames"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// YearFilter selects counters by year. The zero value selects all years.
type YearFilter struct {
	year int
}

// AllYears merges every year.
var AllYears = YearFilter{}

// ForYear selects one Gregorian year.
func ForYear(y int) YearFilter { return YearFilter{year: y} }

// All reports whether f selects every year.
func (f YearFilter) All() bool { return f.year == 0 }

// Year returns the selected year, or 0 for AllYears.
func (f YearFilter) Year() int { return f.year }

func (f YearFilter) String() string {
	if f.All() {
		return "All"
	}
	return strconv.Itoa(f.year)
}

// ParseYearFilter accepts "", "All" (any case) or a year. Years above 2400
// are read as Buddhist era and converted.
func ParseYearFilter(s string) (YearFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllYears, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return AllYears, fmt.Errorf("invalid year %q", s)
	}
	if y > 2400 {
		y -= BuddhistEraOffset
	}
	return ForYear(y), nil
}

// ViewRow is one page in the view statistics report.
type ViewRow struct {
	Page     string `json:"page"`
	PageName string `json:"pageName"`
	Views    int64  `json:"views"`
}

// ViewStatsReport is the page view table with its total.
type ViewStatsReport struct {
	Year  string    `json:"year"`
	Rows  []ViewRow `json:"rows"`
	Total int64     `json:"total"`
}

// Top returns the most viewed page.
func (r ViewStatsReport) Top() (ViewRow, bool) {
	if len(r.Rows) == 0 {
		return ViewRow{}, false
	}
	return r.Rows[0], true
}

// BuildViewStatsReport builds the view table. For AllYears the counters of
// each page are summed across years; for a single year only that year's
// counters are kept. Rows are sorted by views, highest first; ties keep the
// order pages first appear in counters. Total is the sum of the rows.
func BuildViewStatsReport(counters []models.NamedCounter, year YearFilter) ViewStatsReport {
	idx := map[string]int{}
	rows := []ViewRow{}
	for _, c := range counters {
		if !year.All() && c.Year != year.Year() {
			continue
		}
		i, ok := idx[c.Page]
		if !ok {
			i = len(rows)
			idx[c.Page] = i
			rows = append(rows, ViewRow{Page: c.Page, PageName: pagenames.Label(c.Page)})
		}
		rows[i].Views += c.Views
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Views > rows[j].Views })

	var total int64
	for _, r := range rows {
		total += r.Views
	}
	return ViewStatsReport{Year: year.String(), Rows: rows, Total: total}
}

// CounterYears lists the years present in counters, newest first.
func CounterYears(counters []models.NamedCounter) []int {
	seen := map[int]bool{}
	var out []int
	for _, c := range counters {
		if !seen[c.Year] {
			seen[c.Year] = true
			out = append(out, c.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
