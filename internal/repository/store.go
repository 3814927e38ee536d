// Package repository persists translation performance records and leaflet
// history to MongoDB behind one process-wide store.
//
// Store operations follow a best-effort policy: connectivity and operation
// failures are logged here and surfaced to callers as zero values rather
// than errors. The one exception is an unknown collection name, which is a
// programmer error and always raised.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/clearleaf/leaflet-translation-service/internal/config"
	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

// Logical collection names. These are the only two collections the store
// knows about.
const (
	CollectionPerformance = "translation_performance"
	CollectionHistory     = "translation_history"
)

// Store wraps the MongoDB client and the two configured collections. One
// instance serves the whole process; the underlying driver's connection pool
// is shared across concurrent requests.
type Store struct {
	client      *mongo.Client
	db          *mongo.Database
	collections map[string]*mongo.Collection
}

var (
	storeInstance *Store
	storeInitErr  error
	storeOnce     sync.Once
)

// InitStore connects to MongoDB and builds the process-wide store on first
// call. Later calls return the first call's outcome, so a failed connect
// keeps reporting its error instead of a nil store.
func InitStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	storeOnce.Do(func() {
		storeInstance, storeInitErr = Connect(ctx, cfg)
	})
	return storeInstance, storeInitErr
}

// GetStore returns the process-wide store, or nil before InitStore.
func GetStore() *Store {
	return storeInstance
}

// Connect dials MongoDB with the configured pool size and server selection
// timeout and verifies the connection with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(cfg.MongoMaxPoolSize).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Base().Info("connected to MongoDB", zap.String("database", cfg.MongoDBName))
	return NewStore(client, cfg.MongoDBName), nil
}

// NewStore builds a store over an existing client. Used directly by tests
// that manage their own connection lifecycle.
func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client: client,
		db:     db,
		collections: map[string]*mongo.Collection{
			CollectionPerformance: db.Collection(CollectionPerformance),
			CollectionHistory:     db.Collection(CollectionHistory),
		},
	}
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s.client != nil {
		return s.client.Disconnect(ctx)
	}
	return nil
}

// Ping verifies the store is reachable. A nil receiver reports the store as
// unreachable rather than panicking, so a store that was never connected
// shows up as not-ready through interface-typed wiring.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("store not connected")
	}
	return s.client.Ping(ctx, nil)
}

// collection resolves a collection name, raising ErrUnknownCollection for
// anything outside the configured two.
func (s *Store) collection(name string) (*mongo.Collection, error) {
	coll, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCollection, name)
	}
	return coll, nil
}

// insertDocument serializes and inserts a document, returning the
// store-assigned identity as a hex string. Operation failures are logged and
// reported as ok=false.
func (s *Store) insertDocument(ctx context.Context, collectionName string, document interface{}) (string, bool) {
	result, err := s.collections[collectionName].InsertOne(ctx, document)
	if err != nil {
		logger.Base().Error("failed to insert document",
			zap.String("collection", collectionName),
			zap.Error(err),
		)
		return "", false
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", result.InsertedID), true
	}
	return oid.Hex(), true
}

// Document is a point lookup by store-assigned identity. It returns
// ErrUnknownCollection for a collection outside the configured two, and nil
// when the document is absent or the store is unreachable.
func (s *Store) Document(ctx context.Context, collectionName, id string) (bson.M, error) {
	coll, err := s.collection(collectionName)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Base().Error("invalid document id",
			zap.String("collection", collectionName),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, nil
	}

	var doc bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err != mongo.ErrNoDocuments {
			logger.Base().Error("failed to retrieve document",
				zap.String("collection", collectionName),
				zap.String("id", id),
				zap.Error(err),
			)
		}
		return nil, nil
	}
	return doc, nil
}
