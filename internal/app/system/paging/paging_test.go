package paging

import (
	"net/http/httptest"
	"testing"
)

func TestPage(t *testing.T) {
	rows := make([]int, 120)
	for i := range rows {
		rows[i] = i + 1
	}

	tests := []struct {
		name      string
		start     int
		size      int
		wantFirst int
		wantLen   int
		want      Range
	}{
		{"first page", 1, 50, 1, 50, Range{Start: 1, End: 50, Total: 120, PrevStart: 1, NextStart: 51, HasNext: true}},
		{"middle page", 51, 50, 51, 50, Range{Start: 51, End: 100, Total: 120, PrevStart: 1, NextStart: 101, HasPrev: true, HasNext: true}},
		{"last partial page", 101, 50, 101, 20, Range{Start: 101, End: 120, Total: 120, PrevStart: 51, NextStart: 121, HasPrev: true}},
		{"zero start treated as one", 0, 10, 1, 10, Range{Start: 1, End: 10, Total: 120, PrevStart: 1, NextStart: 11, HasNext: true}},
		{"past the end", 500, 50, 0, 0, Range{Total: 120, PrevStart: 450, NextStart: 500, HasPrev: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, r := Page(rows, tt.start, tt.size)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("first = %d, want %d", got[0], tt.wantFirst)
			}
			if r != tt.want {
				t.Errorf("range = %+v, want %+v", r, tt.want)
			}
		})
	}
}

func TestPage_Empty(t *testing.T) {
	got, r := Page([]string{}, 1, 50)
	if len(got) != 0 || r.Start != 0 || r.End != 0 || r.HasNext || r.HasPrev {
		t.Errorf("got %v %+v", got, r)
	}
}

func TestParseStartAndLimit(t *testing.T) {
	tests := []struct {
		query     string
		wantStart int
		wantLimit int
	}{
		{"", 1, PageSize},
		{"?start=51&limit=25", 51, 25},
		{"?start=-3&limit=abc", 1, PageSize},
		{"?limit=100000", 1, MaxPageSize},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/x"+tt.query, nil)
		if got := ParseStart(r); got != tt.wantStart {
			t.Errorf("%q: start = %d, want %d", tt.query, got, tt.wantStart)
		}
		if got := ParseLimit(r); got != tt.wantLimit {
			t.Errorf("%q: limit = %d, want %d", tt.query, got, tt.wantLimit)
		}
	}
}
