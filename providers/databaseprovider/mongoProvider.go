package databaseprovider

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"inventory/providers"
)

type MongoProvider struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoProvider connects and pings the primary before handing out the
// database. ctx bounds both steps.
func NewMongoProvider(ctx context.Context, uri, database string, logger providers.ZapLoggerProvider) (*MongoProvider, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}
	logger.GetLogger().Info("connected to mongodb", zap.String("database", database))

	return &MongoProvider{client: client, db: client.Database(database)}, nil
}

func (p *MongoProvider) Database() *mongo.Database {
	return p.db
}

func (p *MongoProvider) Close(ctx context.Context) error {
	return p.client.Disconnect(ctx)
}
