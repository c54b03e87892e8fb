package db

import (
	"context"
	"time"

	"folio/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const mongoConnectTimeout = 5 * time.Second

// Mongo bundles the audit-log connection and its collections.
type Mongo struct {
	Client *mongo.Client
	Events *mongo.Collection
}

// InitDB connects to MongoDB and loads the collections used by the service.
func InitDB(uri string, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	// loading collections
	return &Mongo{
		Client: client,
		Events: GetCollection(database, "events", client),
	}, nil
}

func GetCollection(database string, collectionName string, client *mongo.Client) *mongo.Collection {
	return client.Database(database).Collection(collectionName)
}

func (m *Mongo) Close() {
	if m == nil || m.Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		logger.Lg.Warn("mongo_disconnect_failed", zap.Error(err))
	}
}
