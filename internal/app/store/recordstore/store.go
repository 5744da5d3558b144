// internal/app/store/recordstore/store.go
//
// Package recordstore is the document store the reporting code reads from.
// Two implementations share one contract: Mongo for production and Memory
// for tests and local tooling.
package recordstore

import "context"

// Document is a single stored record keyed by field name.
// The "_id" field holds the document id.
type Document map[string]any

// ID returns the document id, or "" when it is missing or not a string.
func (d Document) ID() string {
	s, _ := d["_id"].(string)
	return s
}

// Op is a filter comparison operator.
type Op string

const (
	Eq  Op = "$eq"
	Ne  Op = "$ne"
	In  Op = "$in"
	Gt  Op = "$gt"
	Gte Op = "$gte"
	Lt  Op = "$lt"
	Lte Op = "$lte"
)

// Filter restricts a query to documents whose Field compares to Value.
// For In, Value must be a slice.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Where is shorthand for an equality filter.
func Where(field string, v any) Filter { return Filter{Field: field, Op: Eq, Value: v} }

// Order sorts query results by Field.
type Order struct {
	Field string
	Desc  bool
}

// Store is the document store contract.
//
// Get returns (nil, nil) when the document does not exist.
// AtomicIncrement adds by to field in a single atomic upsert, creating the
// document with the field at zero when absent, and merges set into it.
// Errors are *TransientError or *MissingIndexError.
type Store interface {
	Query(ctx context.Context, collection string, filters []Filter, order []Order) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Upsert(ctx context.Context, collection, id string, patch Document, merge bool) error
	Delete(ctx context.Context, collection, id string) error
	AtomicIncrement(ctx context.Context, collection, id, field string, by int64, set Document) error
	DeleteAll(ctx context.Context, collection string) (int64, error)
}
