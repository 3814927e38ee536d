package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

// PerformanceStore is the persistence surface handlers need for translation
// performance records. Records are keyed by store identity for lookup and by
// natural key for updates; deletion is not exposed for this collection.
type PerformanceStore interface {
	InsertPerformance(ctx context.Context, record *domain.TranslationRecord) (string, bool)
	PerformanceByID(ctx context.Context, id string) *domain.TranslationRecord
	AllPerformance(ctx context.Context) []domain.TranslationRecord
	UpdatePerformanceByKey(ctx context.Context, record *domain.TranslationRecord) (bool, int64, int64)
}

// InsertPerformance inserts one performance record and returns the
// store-assigned identity, or ok=false when the store is unavailable.
func (s *Store) InsertPerformance(ctx context.Context, record *domain.TranslationRecord) (string, bool) {
	return s.insertDocument(ctx, CollectionPerformance, record)
}

// PerformanceByID is a point lookup by store-assigned identity. Returns nil
// when the record is absent or the store is unreachable.
func (s *Store) PerformanceByID(ctx context.Context, id string) *domain.TranslationRecord {
	doc, err := s.Document(ctx, CollectionPerformance, id)
	if err != nil || doc == nil {
		return nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		logger.Base().Error("failed to marshal performance document", zap.Error(err))
		return nil
	}
	var record domain.TranslationRecord
	if err := bson.Unmarshal(raw, &record); err != nil {
		logger.Base().Error("failed to decode performance document", zap.Error(err))
		return nil
	}
	return &record
}

// AllPerformance scans the performance collection. Returns an empty slice
// when the store is unreachable.
func (s *Store) AllPerformance(ctx context.Context) []domain.TranslationRecord {
	cursor, err := s.collections[CollectionPerformance].Find(ctx, bson.M{})
	if err != nil {
		logger.Base().Error("failed to retrieve performance records", zap.Error(err))
		return []domain.TranslationRecord{}
	}
	defer cursor.Close(ctx)

	records := []domain.TranslationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		logger.Base().Error("failed to decode performance records", zap.Error(err))
		return []domain.TranslationRecord{}
	}
	return records
}

// UpdatePerformanceByKey replaces the fields of the record matching the
// natural key (leaflet_id, section_number, array_location). It reports
// matched and modified counts; a key matching nothing yields (true, 0, 0),
// a storage failure yields (false, 0, 0).
func (s *Store) UpdatePerformanceByKey(ctx context.Context, record *domain.TranslationRecord) (bool, int64, int64) {
	filter := bson.M{
		"evaluation_leaflet_data.leaflet_id":     record.EvaluationLeafletData.LeafletID,
		"evaluation_leaflet_data.section_number": record.EvaluationLeafletData.SectionNumber,
		"evaluation_leaflet_data.array_location": record.EvaluationLeafletData.ArrayLocation,
	}

	result, err := s.collections[CollectionPerformance].UpdateOne(ctx, filter, bson.M{"$set": record})
	if err != nil {
		logger.Base().Error("failed to update performance record",
			zap.String("leaflet_id", record.EvaluationLeafletData.LeafletID),
			zap.Int("section_number", record.EvaluationLeafletData.SectionNumber),
			zap.Int("array_location", record.EvaluationLeafletData.ArrayLocation),
			zap.Error(err),
		)
		return false, 0, 0
	}
	return true, result.MatchedCount, result.ModifiedCount
}
