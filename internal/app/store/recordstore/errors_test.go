package recordstore_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		missingIndex bool
	}{
		{"index required", errors.New("The query requires an index. You can create it here"), true},
		{"bad hint", errors.New("error processing query: planner returned error :: caused by :: hint provided does not correspond to an existing index"), true},
		{"duplicate key", errors.New("E11000 duplicate key error collection: db.users index: _id_"), false},
		{"network", errors.New("connection(localhost:27017) incomplete read"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recordstore.Classify("query", "users", tt.err)
			if recordstore.IsMissingIndex(got) != tt.missingIndex {
				t.Errorf("IsMissingIndex = %v, want %v (%v)", !tt.missingIndex, tt.missingIndex, got)
			}
			if !tt.missingIndex && !recordstore.IsTransient(got) {
				t.Errorf("expected transient, got %T", got)
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error does not wrap the cause")
			}
		})
	}
}

func TestClassify_NilAndIdempotent(t *testing.T) {
	if recordstore.Classify("get", "x", nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
	first := recordstore.Classify("get", "x", errors.New("boom"))
	again := recordstore.Classify("query", "y", fmt.Errorf("wrapped: %w", first))
	var te *recordstore.TransientError
	if !errors.As(again, &te) || te.Op != "get" {
		t.Errorf("reclassified error lost original op: %v", again)
	}
}
