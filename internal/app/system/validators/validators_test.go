package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/system/validators"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/schoolreports/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSchemasCoverEveryCollection(t *testing.T) {
	s := validators.Schemas()
	for _, c := range []string{
		models.CollPageStats, models.CollUsers, models.CollTeacherLeaveRecords,
		models.CollCourses, models.CollExams, models.CollQuizHistory,
		models.CollEnrolledCourses, models.CollHistoryCertificates,
	} {
		if _, ok := s[c]; !ok {
			t.Errorf("no entry for %s", c)
		}
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_LeaveValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection(models.CollTeacherLeaveRecords)
	now := time.Now()

	_, err := coll.InsertOne(ctx, bson.M{
		"teacherId": "t1", "leaveType": models.LeaveSick,
		"startDate": now, "endDate": now, "leaveDays": 1,
	})
	if err != nil {
		t.Fatalf("valid leave rejected: %v", err)
	}

	_, err = coll.InsertOne(ctx, bson.M{
		"teacherId": "t1", "leaveType": "holiday",
		"startDate": now, "endDate": now,
	})
	if err == nil {
		t.Error("unknown leave type should be rejected")
	}

	_, err = coll.InsertOne(ctx, bson.M{"leaveType": models.LeaveSick})
	if err == nil {
		t.Error("missing required fields should be rejected")
	}
}

func TestEnsureAll_PageStatsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection(models.CollPageStats)
	if _, err := coll.InsertOne(ctx, bson.M{"_id": "App_home_2024", "page": "App_home", "year": 2024, "views": int64(3)}); err != nil {
		t.Fatalf("valid counter rejected: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"_id": "bad", "page": "x", "year": 2024, "views": -1}); err == nil {
		t.Error("negative views should be rejected")
	}
}
