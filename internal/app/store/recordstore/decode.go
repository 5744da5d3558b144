// internal/app/store/recordstore/decode.go
package recordstore

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Decode converts a Document into T using its bson tags.
func Decode[T any](doc Document) (T, error) {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("encode document %q: %w", doc.ID(), err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode document %q: %w", doc.ID(), err)
	}
	return out, nil
}

// DecodeAll decodes every document, stopping at the first failure.
func DecodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := Decode[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
