// internal/app/store/recordstore/mongo.go
package recordstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the production Store backed by a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

// NewMongo returns a Store over db.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Query(ctx context.Context, collection string, filters []Filter, order []Order) ([]Document, error) {
	opts := options.Find()
	if len(order) > 0 {
		sort := bson.D{}
		for _, o := range order {
			dir := 1
			if o.Desc {
				dir = -1
			}
			sort = append(sort, bson.E{Key: o.Field, Value: dir})
		}
		opts.SetSort(sort)
	}

	cur, err := m.db.Collection(collection).Find(ctx, buildFilter(filters), opts)
	if err != nil {
		return nil, Classify("query", collection, err)
	}
	defer cur.Close(ctx)

	var out []Document
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, Classify("query", collection, err)
		}
		out = append(out, normalizeDoc(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, Classify("query", collection, err)
	}
	return out, nil
}

func (m *Mongo) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw bson.M
	err := m.db.Collection(collection).FindOne(ctx, idFilter(id)).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, Classify("get", collection, err)
	}
	return normalizeDoc(raw), nil
}

func (m *Mongo) Upsert(ctx context.Context, collection, id string, patch Document, merge bool) error {
	c := m.db.Collection(collection)
	set := bson.M{}
	for k, v := range patch {
		if k == "_id" {
			continue
		}
		set[k] = v
	}

	var err error
	if merge {
		err = updateByID(ctx, c, id, bson.M{"$set": set})
	} else {
		err = replaceByID(ctx, c, id, set)
	}
	return Classify("upsert", collection, err)
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	_, err := m.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	return Classify("delete", collection, err)
}

func (m *Mongo) AtomicIncrement(ctx context.Context, collection, id, field string, by int64, set Document) error {
	update := bson.M{"$inc": bson.M{field: by}}
	if len(set) > 0 {
		fields := bson.M{}
		for k, v := range set {
			if k == "_id" || k == field {
				continue
			}
			fields[k] = v
		}
		update["$set"] = fields
	}
	err := updateByID(ctx, m.db.Collection(collection), id, update)
	return Classify("increment", collection, err)
}

func (m *Mongo) DeleteAll(ctx context.Context, collection string) (int64, error) {
	res, err := m.db.Collection(collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, Classify("delete_all", collection, err)
	}
	return res.DeletedCount, nil
}

// objectID parses a hex id. Query reports a native ObjectID _id as hex, so an
// id handed back to Get, Delete or an update may name either form.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

// idFilter matches id stored as a string or, for a hex id, as an ObjectID.
func idFilter(id string) bson.M {
	if oid, ok := objectID(id); ok {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

// updateByID updates the ObjectID document a hex id names when one exists,
// otherwise upserts under the string id.
func updateByID(ctx context.Context, c *mongo.Collection, id string, update bson.M) error {
	if oid, ok := objectID(id); ok {
		res, err := c.UpdateOne(ctx, bson.M{"_id": oid}, update)
		if err != nil || res.MatchedCount > 0 {
			return err
		}
	}
	_, err := c.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

// replaceByID is updateByID for whole-document writes. An existing ObjectID
// document keeps its _id.
func replaceByID(ctx context.Context, c *mongo.Collection, id string, doc bson.M) error {
	if oid, ok := objectID(id); ok {
		res, err := c.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
		if err != nil || res.MatchedCount > 0 {
			return err
		}
	}
	doc["_id"] = id
	_, err := c.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	return err
}

// buildFilter turns filters into a bson query. Several filters on one field
// are merged into a single operator document.
func buildFilter(filters []Filter) bson.M {
	q := bson.M{}
	for _, f := range filters {
		op := f.Op
		if op == "" {
			op = Eq
		}
		cond, _ := q[f.Field].(bson.M)
		if cond == nil {
			cond = bson.M{}
		}
		cond[string(op)] = f.Value
		q[f.Field] = cond
	}
	return q
}

// normalizeDoc rewrites driver types into plain Go values so documents look
// the same whichever backend produced them.
func normalizeDoc(raw bson.M) Document {
	out := make(Document, len(raw))
	for k, v := range raw {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		return map[string]any(normalizeDoc(t))
	case bson.D:
		return map[string]any(normalizeDoc(t.Map()))
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case primitive.ObjectID:
		return t.Hex()
	case int32:
		return int64(t)
	default:
		return v
	}
}
