// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows in a paged report list.
const PageSize = 50

// MaxPageSize caps the ?limit= a caller may ask for.
const MaxPageSize = 500

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	return parsePositive(query.Get(r, "start"), 1)
}

// ParseLimit extracts ?limit=, defaulting to PageSize and clamped to
// MaxPageSize.
func ParseLimit(r *http.Request) int {
	n := parsePositive(query.Get(r, "limit"), PageSize)
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

func parsePositive(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start     int  `json:"start"` // 1-based start index (0 if no results)
	End       int  `json:"end"`   // 1-based end index (0 if no results)
	Total     int  `json:"total"`
	PrevStart int  `json:"prevStart"` // start value for previous page link
	NextStart int  `json:"nextStart"` // start value for next page link
	HasPrev   bool `json:"hasPrev"`
	HasNext   bool `json:"hasNext"`
}

// Page returns the rows from 1-based start, at most size of them, with the
// range describing the window. A start past the end yields no rows.
func Page[T any](rows []T, start, size int) ([]T, Range) {
	if start < 1 {
		start = 1
	}
	if size < 1 {
		size = PageSize
	}
	total := len(rows)
	if start > total {
		return rows[:0], Range{Total: total, PrevStart: prevStart(start, size), NextStart: start, HasPrev: start > 1}
	}

	end := start - 1 + size
	if end > total {
		end = total
	}
	return rows[start-1 : end], Range{
		Start:     start,
		End:       end,
		Total:     total,
		PrevStart: prevStart(start, size),
		NextStart: end + 1,
		HasPrev:   start > 1,
		HasNext:   end < total,
	}
}

func prevStart(start, size int) int {
	p := start - size
	if p < 1 {
		p = 1
	}
	return p
}
