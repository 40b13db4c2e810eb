package mongo

import (
	"context"
	"fmt"
	"time"

	"panganjawara/internal/api/config"
	"panganjawara/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Conn struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// InitMongo membuka koneksi Mongo untuk jejak audit admin.
func InitMongo(cfg config.MongoConfig) (*Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(logger.NewMongoMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo connection check failed: %w", err)
	}

	return &Conn{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}
