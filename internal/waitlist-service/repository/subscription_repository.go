package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "waitlist-backend/internal/waitlist-service/errors"
	"waitlist-backend/internal/waitlist-service/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const subscriptionCollection = "email_subscriptions"

type SubscriptionRepository interface {
	InsertSubscription(ctx context.Context, subscription model.EmailSubscription) error
	GetSubscriptionByEmail(ctx context.Context, email string) (model.EmailSubscription, error)
	GetSubscriptions(ctx context.Context, status string, limit int64) ([]model.EmailSubscription, error)
}

type subscriptionDocument struct {
	ID        string      `bson:"id"`
	Email     string      `bson:"email"`
	Timestamp interface{} `bson:"timestamp"`
	Status    string      `bson:"status"`
}

type subscriptionRepository struct {
	collection *mongo.Collection
}

func (r *subscriptionRepository) InsertSubscription(ctx context.Context, subscription model.EmailSubscription) error {
	doc := subscriptionDocument{
		ID:        subscription.ID,
		Email:     subscription.Email,
		Timestamp: encodeTimestamp(subscription.Timestamp),
		Status:    subscription.Status,
	}
	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("SubscriptionRepository.InsertSubscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) GetSubscriptionByEmail(ctx context.Context, email string) (model.EmailSubscription, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var doc subscriptionDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.EmailSubscription{}, fmt.Errorf("SubscriptionRepository.GetSubscriptionByEmail: %w", apperrors.ErrSubscriptionNotFound)
		}
		return model.EmailSubscription{}, fmt.Errorf("SubscriptionRepository.GetSubscriptionByEmail: %w", err)
	}
	subscription, err := r.toModel(doc)
	if err != nil {
		return model.EmailSubscription{}, fmt.Errorf("SubscriptionRepository.GetSubscriptionByEmail: %w", err)
	}
	return subscription, nil
}

func (r *subscriptionRepository) GetSubscriptions(ctx context.Context, status string, limit int64) ([]model.EmailSubscription, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("SubscriptionRepository.GetSubscriptions: %w", err)
	}
	var docs []subscriptionDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("SubscriptionRepository.GetSubscriptions: %w", err)
	}
	subscriptions := make([]model.EmailSubscription, 0, len(docs))
	for _, doc := range docs {
		subscription, err := r.toModel(doc)
		if err != nil {
			return nil, fmt.Errorf("SubscriptionRepository.GetSubscriptions: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) toModel(doc subscriptionDocument) (model.EmailSubscription, error) {
	timestamp, err := decodeTimestamp(doc.Timestamp)
	if err != nil {
		return model.EmailSubscription{}, err
	}
	return model.EmailSubscription{
		ID:        doc.ID,
		Email:     doc.Email,
		Timestamp: timestamp,
		Status:    doc.Status,
	}, nil
}

func NewSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionRepository{
		collection: db.Collection(subscriptionCollection),
	}
}
