package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB client for the given URI and verifies the
// connection with a ping before returning it. The caller owns the client
// and is responsible for calling Disconnect on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Connect is lazy; ping so a bad URI fails at startup, not on the
	// first request.
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("MongoDB connection established successfully")
	return client, nil
}
