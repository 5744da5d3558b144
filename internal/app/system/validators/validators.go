// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/schoolreports/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Schemas returns the JSON-Schema validator per collection. A nil schema
// means the collection is only created. Validation is "moderate" so legacy
// documents already in place are not rejected on unrelated updates.
func Schemas() map[string]bson.M {
	return map[string]bson.M{
		models.CollPageStats:           pageStatsSchema(),
		models.CollUsers:               usersSchema(),
		models.CollTeacherLeaveRecords: leaveSchema(),
		models.CollCourses:             nil,
		models.CollExams:               nil,
		models.CollQuizHistory:         quizHistorySchema(),
		models.CollEnrolledCourses:     nil,
		models.CollHistoryCertificates: nil,
	}
}

// collectionOrder keeps startup logs stable.
var collectionOrder = []string{
	models.CollPageStats,
	models.CollUsers,
	models.CollTeacherLeaveRecords,
	models.CollCourses,
	models.CollExams,
	models.CollQuizHistory,
	models.CollEnrolledCourses,
	models.CollHistoryCertificates,
}

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators we log and
// skip.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string
	schemas := Schemas()

	for _, coll := range collectionOrder {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			continue
		}
		schema := schemas[coll]
		if schema == nil {
			continue
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				continue
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err == nil && len(names) > 0 {
		zap.L().Info("collection exists", zap.String("collection", name))
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

func isNamespaceExistsErr(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 48 {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

// isUnsupported matches "no such command" (59) and "not implemented" (115)
// from deployments without validator support.
func isUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || ce.Code == 115) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") ||
		strings.Contains(s, "not implemented") ||
		strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func pageStatsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"page", "year", "views"},
			"properties": bson.M{
				"page":        bson.M{"bsonType": "string", "minLength": 1},
				"year":        bson.M{"bsonType": bson.A{"int", "long"}},
				"views":       bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"lastUpdated": bson.M{"bsonType": "date"},
			},
		},
	}
}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"role"},
			"properties": bson.M{
				"role":           bson.M{"bsonType": "string"},
				"fullName":       bson.M{"bsonType": bson.A{"string", "null"}},
				"educationLevel": bson.M{"bsonType": bson.A{"string", "null"}},
				"teacherId":      bson.M{"bsonType": bson.A{"string", "null"}},
			},
		},
	}
}

func leaveSchema() bson.M {
	types := make(bson.A, 0, len(models.LeaveTypes))
	for _, lt := range models.LeaveTypes {
		types = append(types, lt)
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"teacherId", "leaveType", "startDate", "endDate"},
			"properties": bson.M{
				"teacherId": bson.M{"bsonType": "string", "minLength": 1},
				"leaveType": bson.M{"enum": types},
				"startDate": bson.M{"bsonType": "date"},
				"endDate":   bson.M{"bsonType": "date"},
				"leaveDays": bson.M{"bsonType": bson.A{"int", "long", "double"}, "minimum": 0},
			},
		},
	}
}

func quizHistorySchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"studentId"},
			"properties": bson.M{
				"studentId":      bson.M{"bsonType": "string"},
				"score":          bson.M{"bsonType": bson.A{"int", "long", "double"}},
				"totalQuestions": bson.M{"bsonType": bson.A{"int", "long", "double"}},
				"hasCertificate": bson.M{"bsonType": "bool"},
				"completedAt":    bson.M{"bsonType": "date"},
			},
		},
	}
}
