// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/schoolreports/internal/app/store/pagestats"
	"github.com/dalemusser/schoolreports/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// WAFFLE passes DBDeps by value to each hook, so everything that Startup
// fills in later sits behind a pointer created in ConnectDB.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Records  recordstore.Store
	Counters *pagestats.Store
	Queries  *reportqueries.Queries

	Live     *liveSchool
	Watchers *snapshot.Group
}
