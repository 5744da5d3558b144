// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/schoolreports/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Key is one indexed field. Desc sorts it descending.
type Key struct {
	Field string
	Desc  bool
}

// Spec describes one index the report queries rely on.
type Spec struct {
	Collection string
	Name       string
	Keys       []Key
}

// Fields returns the indexed field names in order.
func (s Spec) Fields() []string {
	out := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		out[i] = k.Field
	}
	return out
}

func (s Spec) model() mongo.IndexModel {
	keys := make(bson.D, 0, len(s.Keys))
	for _, k := range s.Keys {
		v := 1
		if k.Desc {
			v = -1
		}
		keys = append(keys, bson.E{Key: k.Field, Value: v})
	}
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(s.Name)}
}

func asc(f string) Key  { return Key{Field: f} }
func desc(f string) Key { return Key{Field: f, Desc: true} }

// Specs lists every index, grouped by collection in creation order.
func Specs() []Spec {
	return []Spec{
		{models.CollPageStats, "idx_page_stats_page_year", []Key{asc("page"), asc("year")}},
		{models.CollPageStats, "idx_page_stats_year", []Key{asc("year")}},

		// role lists are ordered by name
		{models.CollUsers, "idx_users_role_fullname", []Key{asc("role"), asc("fullName")}},
		{models.CollUsers, "idx_users_teacher", []Key{asc("teacherId")}},

		{models.CollTeacherLeaveRecords, "idx_leave_teacher_start", []Key{asc("teacherId"), asc("startDate")}},
		{models.CollTeacherLeaveRecords, "idx_leave_start", []Key{asc("startDate")}},

		{models.CollCourses, "idx_courses_title", []Key{asc("title")}},

		{models.CollQuizHistory, "idx_quiz_student_exam", []Key{asc("studentId"), asc("examId")}},
		{models.CollQuizHistory, "idx_quiz_completed", []Key{asc("completedAt")}},
		{models.CollQuizHistory, "idx_quiz_cert_completed", []Key{asc("hasCertificate"), desc("completedAt")}},

		{models.CollEnrolledCourses, "idx_enrolled_user", []Key{asc("userId")}},
		{models.CollEnrolledCourses, "idx_enrolled_course", []Key{asc("courseId")}},

		{models.CollHistoryCertificates, "idx_history_cert_issued", []Key{desc("issuedDate")}},
	}
}

/*
EnsureAll is called at startup. Creating an index that already exists is a
no-op; an index with the same keys under another name is dropped and
recreated. Problems are aggregated so startup fails with all of them.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	byColl := map[string][]Spec{}
	var order []string
	for _, s := range Specs() {
		if _, ok := byColl[s.Collection]; !ok {
			order = append(order, s.Collection)
		}
		byColl[s.Collection] = append(byColl[s.Collection], s)
	}

	var problems []string
	for _, coll := range order {
		if err := ensureIndexSet(ctx, db.Collection(coll), byColl[coll]); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func listExisting(ctx context.Context, coll *mongo.Collection) map[string]existingIndex {
	existing := map[string]existingIndex{}
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return existing
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()), zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, specs []Spec) error {
	var errs []string
	existing := listExisting(ctx, coll)

	for _, s := range specs {
		m := s.model()
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[sig]; ok {
			if ex.Name == s.Name {
				continue
			}
			zap.L().Info("renaming index to align with desired name",
				zap.String("collection", coll.Name()),
				zap.String("from", ex.Name),
				zap.String("to", s.Name))
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s: rename drop failed: %v", s.Name, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			zap.L().Warn("create index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", s.Name),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s: %v", s.Name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", s.Name),
			zap.String("keys", sig),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
