// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/store/pagestats"
	"github.com/dalemusser/schoolreports/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/app/system/indexes"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
	"github.com/dalemusser/schoolreports/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// ConnectDB opens the MongoDB client and builds the stores on top of it.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	db := client.Database(appCfg.MongoDatabase)
	return newDeps(client, db, recordstore.NewMongo(db), appCfg, logger)
}

// newDeps wires the stores over rs. client and db may be nil in tests.
func newDeps(client *mongo.Client, db *mongo.Database, rs recordstore.Store, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	loc, err := time.LoadLocation(appCfg.Timezone)
	if err != nil {
		return DBDeps{}, fmt.Errorf("load timezone: %w", err)
	}
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Records:       rs,
		Counters:      pagestats.New(rs, logger, pagestats.WithLocation(loc)),
		Queries:       reportqueries.New(rs, logger),
		Live:          &liveSchool{},
		Watchers:      &snapshot.Group{},
	}, nil
}

// EnsureSchema creates collections with their validators, then the indexes
// every report query needs.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Warn("validators incomplete", zap.Error(err))
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
