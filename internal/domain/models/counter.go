// internal/domain/models/counter.go
package models

import (
	"fmt"
	"time"
)

// NamedCounter is a per-name, per-year view counter.
// The document id is "<page>_<year>".
type NamedCounter struct {
	ID          string    `bson:"_id" json:"id"`
	Page        string    `bson:"page" json:"page"`
	Year        int       `bson:"year" json:"year"`
	Views       int64     `bson:"views" json:"views"`
	LastUpdated time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// CounterID returns the document id for a page in a given year.
func CounterID(page string, year int) string {
	return fmt.Sprintf("%s_%d", page, year)
}
