// internal/app/store/recordstore/errors.go
package recordstore

import (
	"errors"
	"fmt"
	"strings"
)

// TransientError is a read or write failure against the backend.
// Callers may retry; this package never does.
type TransientError struct {
	Op         string
	Collection string
	Err        error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("recordstore: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// MissingIndexError means the backend refused a query because a composite
// index it needs has not been created.
type MissingIndexError struct {
	Op         string
	Collection string
	Err        error
}

func (e *MissingIndexError) Error() string {
	return fmt.Sprintf("recordstore: %s %s: missing index: %v", e.Op, e.Collection, e.Err)
}

func (e *MissingIndexError) Unwrap() error { return e.Err }

// Hint is the operator-facing remedy.
func (e *MissingIndexError) Hint() string {
	return "create the index required by this query on collection " + e.Collection
}

// Classify wraps a raw backend error. Errors that mention an index (other
// than duplicate-key violations) are missing-index failures; everything else
// is transient. Already classified errors pass through.
func Classify(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransientError
	var me *MissingIndexError
	if errors.As(err, &te) || errors.As(err, &me) {
		return err
	}
	if looksLikeMissingIndex(err) {
		return &MissingIndexError{Op: op, Collection: collection, Err: err}
	}
	return &TransientError{Op: op, Collection: collection, Err: err}
}

func looksLikeMissingIndex(err error) bool {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "e11000") || strings.Contains(s, "duplicate key") {
		return false
	}
	return strings.Contains(s, "index")
}

// IsMissingIndex reports whether err is or wraps a *MissingIndexError.
func IsMissingIndex(err error) bool {
	var me *MissingIndexError
	return errors.As(err, &me)
}

// IsTransient reports whether err is or wraps a *TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
