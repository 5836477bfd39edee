package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptions describes the submission-log MongoDB deployment
type MongoOptions struct {
	URI            string
	Database       string
	Username       string
	Password       string
	AppName        string
	ConnectTimeout time.Duration
}

// OpenMongo connects to MongoDB, verifies the deployment answers a ping and
// returns the client together with the configured database.
func OpenMongo(ctx context.Context, opts MongoOptions) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(opts.URI).
		SetAppName(opts.AppName)

	if opts.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(opts.ConnectTimeout)
		clientOptions.SetServerSelectionTimeout(opts.ConnectTimeout)
	}

	if opts.Username != "" && opts.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: opts.Username,
			Password: opts.Password,
		})
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout(opts))
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, client.Database(opts.Database), nil
}

func connectTimeout(opts MongoOptions) time.Duration {
	if opts.ConnectTimeout > 0 {
		return opts.ConnectTimeout
	}
	return 10 * time.Second
}
