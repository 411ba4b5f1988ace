package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

type (
	Config struct {
		URI      string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
		Database string `envconfig:"MONGODB_DATABASE" default:"adverts"`
	}

	MongoDBClient struct {
		*mongo.Client
		databaseName string
	}
)

func NewMongoDBClient(ctx context.Context, config *Config) (*MongoDBClient, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &MongoDBClient{Client: client, databaseName: config.Database}, nil
}

func (mc *MongoDBClient) Database() *mongo.Database {
	return mc.Client.Database(mc.databaseName)
}

func createIndex(ctx context.Context, collection *mongo.Collection, keys any, opts *options.IndexOptions) error {
	model := mongo.IndexModel{Keys: keys, Options: opts}
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collection.Name(), err)
	}
	return nil
}
