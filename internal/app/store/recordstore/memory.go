// internal/app/store/recordstore/memory.go
package recordstore

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory is an in-process Store. It is safe for concurrent use and keeps
// the same contract as Mongo, including missing-index failures for
// queries registered with RequireIndex.
type Memory struct {
	mu       sync.Mutex
	colls    map[string]map[string]Document
	required map[string][]string // collection -> field-set signatures
	ensured  map[string]bool     // collection + "|" + signature
	fault    func(op, collection string) error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		colls:    map[string]map[string]Document{},
		required: map[string][]string{},
		ensured:  map[string]bool{},
	}
}

// RequireIndex makes queries whose filter and sort fields are exactly
// fields fail with a missing-index error until EnsureIndex is called.
func (m *Memory) RequireIndex(collection string, fields ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.required[collection] = append(m.required[collection], fieldSig(fields))
}

// EnsureIndex satisfies an index registered with RequireIndex.
func (m *Memory) EnsureIndex(collection string, fields ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensured[collection+"|"+fieldSig(fields)] = true
}

// SetFault installs a hook consulted before every operation; a non-nil
// return fails the operation with that error.
func (m *Memory) SetFault(fn func(op, collection string) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fault = fn
}

func (m *Memory) checkFault(op, collection string) error {
	if m.fault == nil {
		return nil
	}
	return Classify(op, collection, m.fault(op, collection))
}

func (m *Memory) Query(ctx context.Context, collection string, filters []Filter, order []Order) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, Classify("query", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkFault("query", collection); err != nil {
		return nil, err
	}

	var fields []string
	for _, f := range filters {
		fields = append(fields, f.Field)
	}
	for _, o := range order {
		fields = append(fields, o.Field)
	}
	sig := fieldSig(fields)
	for _, req := range m.required[collection] {
		if req == sig && !m.ensured[collection+"|"+sig] {
			return nil, Classify("query", collection,
				fmt.Errorf("FAILED_PRECONDITION: the query requires an index on (%s)", sig))
		}
	}

	out := []Document{}
	for _, d := range m.colls[collection] {
		if matchesAll(d, filters) {
			out = append(out, copyDoc(d))
		}
	}

	// Map iteration order is random; id order gives a stable base.
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	if len(order) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range order {
				c := compare(out[i][o.Field], out[j][o.Field])
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, Classify("get", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkFault("get", collection); err != nil {
		return nil, err
	}
	d, ok := m.colls[collection][id]
	if !ok {
		return nil, nil
	}
	return copyDoc(d), nil
}

func (m *Memory) Upsert(ctx context.Context, collection, id string, patch Document, merge bool) error {
	if err := ctx.Err(); err != nil {
		return Classify("upsert", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkFault("upsert", collection); err != nil {
		return err
	}
	c := m.coll(collection)
	d, ok := c[id]
	if !ok || !merge {
		d = Document{}
	}
	for k, v := range patch {
		d[k] = v
	}
	d["_id"] = id
	c[id] = d
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return Classify("delete", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkFault("delete", collection); err != nil {
		return err
	}
	delete(m.colls[collection], id)
	return nil
}

func (m *Memory) AtomicIncrement(ctx context.Context, collection, id, field string, by int64, set Document) error {
	if err := ctx.Err(); err != nil {
		return Classify("increment", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkFault("increment", collection); err != nil {
		return err
	}
	c := m.coll(collection)
	d, ok := c[id]
	if !ok {
		d = Document{"_id": id}
		c[id] = d
	}
	for k, v := range set {
		if k == "_id" || k == field {
			continue
		}
		d[k] = v
	}
	cur, _ := toFloat(d[field])
	d[field] = int64(cur) + by
	return nil
}

func (m *Memory) DeleteAll(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, Classify("delete_all", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkFault("delete_all", collection); err != nil {
		return 0, err
	}
	n := int64(len(m.colls[collection]))
	delete(m.colls, collection)
	return n, nil
}

func (m *Memory) coll(name string) map[string]Document {
	c, ok := m.colls[name]
	if !ok {
		c = map[string]Document{}
		m.colls[name] = c
	}
	return c
}

func copyDoc(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func fieldSig(fields []string) string {
	s := append([]string(nil), fields...)
	sort.Strings(s)
	return strings.Join(s, ",")
}

func matchesAll(d Document, filters []Filter) bool {
	for _, f := range filters {
		if !matches(d[f.Field], f) {
			return false
		}
	}
	return true
}

func matches(v any, f Filter) bool {
	switch f.Op {
	case Eq, "":
		return equal(v, f.Value)
	case Ne:
		return !equal(v, f.Value)
	case In:
		rv := reflect.ValueOf(f.Value)
		if rv.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if equal(v, rv.Index(i).Interface()) {
				return true
			}
		}
		return false
	}
	if v == nil {
		return false
	}
	c := compare(v, f.Value)
	switch f.Op {
	case Gt:
		return c > 0
	case Gte:
		return c >= 0
	case Lt:
		return c < 0
	case Lte:
		return c <= 0
	}
	return false
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if _, ok := toFloat(a); ok {
		if _, ok := toFloat(b); ok {
			return compare(a, b) == 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

// compare orders nil first, then numbers, strings, times and bools.
// Values of unrelated kinds compare by their kind rank.
func compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 1:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case 2:
		return strings.Compare(a.(string), b.(string))
	case 3:
		return a.(time.Time).Compare(b.(time.Time))
	case 4:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		}
		return 1
	}
	return 0
}

func rank(v any) int {
	if v == nil {
		return 0
	}
	if _, ok := toFloat(v); ok {
		return 1
	}
	switch v.(type) {
	case string:
		return 2
	case time.Time:
		return 3
	case bool:
		return 4
	}
	return 5
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
