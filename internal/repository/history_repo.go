package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

// HistoryStore is the persistence surface handlers need for leaflet history.
// History records are keyed by the caller-assigned id field, never by the
// store's internal identity, which is excluded from everything returned.
type HistoryStore interface {
	InsertHistory(ctx context.Context, history *domain.LeafletHistory) (string, bool)
	HistoryByLeafletID(ctx context.Context, leafletID string) *domain.LeafletHistory
	AllHistory(ctx context.Context) []domain.LeafletHistory
	DeleteHistory(ctx context.Context, leafletID string) bool
}

// InsertHistory inserts one leaflet history record and returns the
// store-assigned identity, or ok=false when the store is unavailable.
func (s *Store) InsertHistory(ctx context.Context, history *domain.LeafletHistory) (string, bool) {
	return s.insertDocument(ctx, CollectionHistory, history)
}

// HistoryByLeafletID looks up one history record by its caller-assigned id.
// Returns nil when absent or the store is unreachable.
func (s *Store) HistoryByLeafletID(ctx context.Context, leafletID string) *domain.LeafletHistory {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var history domain.LeafletHistory
	err := s.collections[CollectionHistory].FindOne(ctx, bson.M{"id": leafletID}, opts).Decode(&history)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			logger.Base().Error("failed to retrieve leaflet history",
				zap.String("leaflet_id", leafletID),
				zap.Error(err),
			)
		}
		return nil
	}
	return &history
}

// AllHistory scans the history collection with the store identity excluded.
// Returns an empty slice when the store is unreachable.
func (s *Store) AllHistory(ctx context.Context) []domain.LeafletHistory {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := s.collections[CollectionHistory].Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Base().Error("failed to retrieve leaflet history records", zap.Error(err))
		return []domain.LeafletHistory{}
	}
	defer cursor.Close(ctx)

	histories := []domain.LeafletHistory{}
	if err := cursor.All(ctx, &histories); err != nil {
		logger.Base().Error("failed to decode leaflet history records", zap.Error(err))
		return []domain.LeafletHistory{}
	}
	return histories
}

// DeleteHistory removes one history record by caller-assigned id and
// reports whether a document was removed.
func (s *Store) DeleteHistory(ctx context.Context, leafletID string) bool {
	result, err := s.collections[CollectionHistory].DeleteOne(ctx, bson.M{"id": leafletID})
	if err != nil {
		logger.Base().Error("failed to delete leaflet history",
			zap.String("leaflet_id", leafletID),
			zap.Error(err),
		)
		return false
	}
	return result.DeletedCount > 0
}
