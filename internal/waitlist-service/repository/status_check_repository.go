package repository

import (
	"context"
	"fmt"

	"waitlist-backend/internal/waitlist-service/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statusCheckCollection = "status_checks"

type StatusCheckRepository interface {
	InsertStatusCheck(ctx context.Context, check model.StatusCheck) error
	GetStatusChecks(ctx context.Context, limit int64) ([]model.StatusCheck, error)
}

type statusCheckDocument struct {
	ID         string      `bson:"id"`
	ClientName string      `bson:"client_name"`
	Timestamp  interface{} `bson:"timestamp"`
}

type statusCheckRepository struct {
	collection *mongo.Collection
}

func (r *statusCheckRepository) InsertStatusCheck(ctx context.Context, check model.StatusCheck) error {
	doc := statusCheckDocument{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  encodeTimestamp(check.Timestamp),
	}
	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("StatusCheckRepository.InsertStatusCheck: %w", err)
	}
	return nil
}

func (r *statusCheckRepository) GetStatusChecks(ctx context.Context, limit int64) ([]model.StatusCheck, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("StatusCheckRepository.GetStatusChecks: %w", err)
	}
	var docs []statusCheckDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("StatusCheckRepository.GetStatusChecks: %w", err)
	}
	checks := make([]model.StatusCheck, 0, len(docs))
	for _, doc := range docs {
		timestamp, err := decodeTimestamp(doc.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("StatusCheckRepository.GetStatusChecks: %w", err)
		}
		checks = append(checks, model.StatusCheck{
			ID:         doc.ID,
			ClientName: doc.ClientName,
			Timestamp:  timestamp,
		})
	}
	return checks, nil
}

func NewStatusCheckRepository(db *mongo.Database) StatusCheckRepository {
	return &statusCheckRepository{
		collection: db.Collection(statusCheckCollection),
	}
}
