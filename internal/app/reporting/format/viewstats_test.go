package format_test

import (
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

func counters() []models.NamedCounter {
	return []models.NamedCounter{
		{Page: "App_home", Year: 2023, Views: 10},
		{Page: "App_home", Year: 2024, Views: 5},
		{Page: "App_about", Year: 2024, Views: 7},
	}
}

func TestBuildViewStatsReport(t *testing.T) {
	tests := []struct {
		name  string
		year  format.YearFilter
		pages []string
		views []int64
		total int64
	}{
		{"all years", format.AllYears, []string{"App_home", "App_about"}, []int64{15, 7}, 22},
		{"single year", format.ForYear(2024), []string{"App_about", "App_home"}, []int64{7, 5}, 12},
		{"empty year", format.ForYear(2020), nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := format.BuildViewStatsReport(counters(), tt.year)
			if len(r.Rows) != len(tt.pages) {
				t.Fatalf("rows = %d, want %d", len(r.Rows), len(tt.pages))
			}
			for i, row := range r.Rows {
				if row.Page != tt.pages[i] || row.Views != tt.views[i] {
					t.Errorf("row %d = %s/%d, want %s/%d", i, row.Page, row.Views, tt.pages[i], tt.views[i])
				}
			}
			if r.Total != tt.total {
				t.Errorf("total = %d, want %d", r.Total, tt.total)
			}
		})
	}
}

func TestViewStatsTopAndLabels(t *testing.T) {
	r := format.BuildViewStatsReport(counters(), format.AllYears)
	top, ok := r.Top()
	if !ok || top.Page != "App_home" {
		t.Fatalf("Top = %+v, %v", top, ok)
	}
	if top.PageName == "" || top.PageName == "App_home" {
		t.Errorf("App_home should have a label, got %q", top.PageName)
	}
	if r.Year != "All" {
		t.Errorf("Year = %q", r.Year)
	}

	if _, ok := format.BuildViewStatsReport(nil, format.AllYears).Top(); ok {
		t.Error("empty report should have no top page")
	}
}

func TestViewStatsTiesKeepFirstAppearance(t *testing.T) {
	r := format.BuildViewStatsReport([]models.NamedCounter{
		{Page: "b", Year: 2024, Views: 3},
		{Page: "a", Year: 2024, Views: 3},
	}, format.AllYears)
	if r.Rows[0].Page != "b" || r.Rows[1].Page != "a" {
		t.Errorf("order = %s,%s", r.Rows[0].Page, r.Rows[1].Page)
	}
}

func TestParseYearFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    format.YearFilter
		wantErr bool
	}{
		{"", format.AllYears, false},
		{"All", format.AllYears, false},
		{"all", format.AllYears, false},
		{"2024", format.ForYear(2024), false},
		{"2567", format.ForYear(2024), false},
		{"abc", format.AllYears, true},
		{"-3", format.AllYears, true},
	}
	for _, tt := range tests {
		got, err := format.ParseYearFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseYearFilter(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseYearFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCounterYears(t *testing.T) {
	got := format.CounterYears(counters())
	if len(got) != 2 || got[0] != 2024 || got[1] != 2023 {
		t.Errorf("CounterYears = %v", got)
	}
}
