// internal/app/reporting/xref/alias.go
//
// Package xref joins records across collections and reads fields that have
// been stored under several names over the life of the data.
package xref

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ResolveAlias returns the first truthy value found by trying each key, in
// order, on each candidate, in order. A later candidate is consulted only
// when no key matched on the earlier ones. The bool is false when nothing
// matched; that is a normal outcome and callers apply their own fallback.
func ResolveAlias(candidates []map[string]any, keys []string) (any, bool) {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		for _, k := range keys {
			if v, ok := c[k]; ok && truthy(v) {
				return v, true
			}
		}
	}
	return nil, false
}

// ResolveString is ResolveAlias for display text. Non-string values are
// formatted with fmt; a miss returns "".
func ResolveString(candidates []map[string]any, keys []string) string {
	v, ok := ResolveAlias(candidates, keys)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(v)
}

// ResolveTime is ResolveAlias for timestamps. Values that are not times are
// treated as missing.
func ResolveTime(candidates []map[string]any, keys []string) time.Time {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		for _, k := range keys {
			if t, ok := c[k].(time.Time); ok && !t.IsZero() {
				return t
			}
		}
	}
	return time.Time{}
}

// truthy treats nil, blank strings, zero numbers, false, zero times and
// empty collections as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	case time.Time:
		return !t.IsZero()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Map, reflect.Slice:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
