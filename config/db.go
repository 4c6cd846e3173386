package config

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pool bounds and timeouts are deployment constants, not tunables.
const (
	minPoolSize            = 5
	maxPoolSize            = 50
	connectTimeout         = 10 * time.Second
	serverSelectionTimeout = 5 * time.Second
	pingTimeout            = 2 * time.Second
)

var ErrMongoURIMissing = errors.New("MONGODB_URI is not set")

var (
	dbMu     sync.Mutex
	dbClient *mongo.Client
	database *mongo.Database
)

// Connect returns the shared database handle, dialing it on first use.
// Concurrent callers during the initial dial block on the mutex and reuse the
// first caller's connection. A cached handle whose transport has dropped is
// discarded and re-dialed; a failed dial leaves nothing memoized so the next
// call retries.
func Connect(ctx context.Context) (*mongo.Database, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if dbClient != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := dbClient.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			return database, nil
		}
		log.Warn().Err(err).Msg("cached mongo connection is dead, reconnecting")
		_ = dbClient.Disconnect(context.Background())
		dbClient = nil
		database = nil
	}

	c := Get()
	if c.MongoURI == "" {
		return nil, ErrMongoURIMissing
	}

	opts := options.Client().
		ApplyURI(c.MongoURI).
		SetMinPoolSize(minPoolSize).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	dbClient = client
	database = client.Database(c.MongoDB)
	log.Info().Str("database", c.MongoDB).Msg("connected to mongodb")
	return database, nil
}

// ConnectDB dials the store at boot and fails fatally when the connection
// string is absent or the store is unreachable.
func ConnectDB() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if _, err := Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
}

// Collection resolves a collection through the live handle, reconnecting if
// the cached connection has dropped.
func Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := Connect(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// GetCollection is the convenience accessor used once connectivity is
// established at boot. It returns nil if the store is unreachable.
func GetCollection(name string) *mongo.Collection {
	coll, err := Collection(context.Background(), name)
	if err != nil {
		log.Error().Err(err).Str("collection", name).Msg("failed to resolve collection")
		return nil
	}
	return coll
}

// Ping reports store reachability for the health endpoint.
func Ping(ctx context.Context) error {
	dbMu.Lock()
	client := dbClient
	dbMu.Unlock()
	if client == nil {
		return errors.New("not connected")
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return client.Ping(pingCtx, readpref.Primary())
}

// EnsureIndexes creates the indexes queries depend on: the unique user email
// index and the text index backing property search. Safe to run on every boot.
func EnsureIndexes(ctx context.Context) error {
	db, err := Connect(ctx)
	if err != nil {
		return err
	}

	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("properties").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "location", Value: "text"},
		},
	})
	return err
}
