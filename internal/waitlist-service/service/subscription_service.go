package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "waitlist-backend/internal/waitlist-service/errors"
	"waitlist-backend/internal/waitlist-service/model"
	"waitlist-backend/internal/waitlist-service/repository"

	"github.com/google/uuid"
)

// subscriberFetchLimit caps a single listing read against the store.
const subscriberFetchLimit = 10000

type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) (subscription model.EmailSubscription, alreadySubscribed bool, err error)
	GetSubscribers(ctx context.Context) ([]model.EmailSubscription, error)
}

type subscriptionService struct {
	subscriptionRepository repository.SubscriptionRepository
}

// Subscribe lower-cases the address, then does a check-then-insert against the
// subscriptions collection. The two store calls are not atomic: concurrent
// first-time subscribes for the same address can both insert. An existing
// record short-circuits the insert whatever its status, so an unsubscribed
// address is not reactivated.
func (s *subscriptionService) Subscribe(ctx context.Context, email string) (model.EmailSubscription, bool, error) {
	normalized := strings.ToLower(email)

	existing, err := s.subscriptionRepository.GetSubscriptionByEmail(ctx, normalized)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, apperrors.ErrSubscriptionNotFound) {
		return model.EmailSubscription{}, false, fmt.Errorf("SubscriptionService.Subscribe: %w", err)
	}

	subscription := model.EmailSubscription{
		ID:        uuid.NewString(),
		Email:     normalized,
		Timestamp: time.Now().UTC(),
		Status:    model.SubscriptionStatusSubscribed,
	}
	if err = s.subscriptionRepository.InsertSubscription(ctx, subscription); err != nil {
		return model.EmailSubscription{}, false, fmt.Errorf("SubscriptionService.Subscribe: %w", err)
	}
	return subscription, false, nil
}

func (s *subscriptionService) GetSubscribers(ctx context.Context) ([]model.EmailSubscription, error) {
	subscribers, err := s.subscriptionRepository.GetSubscriptions(ctx, model.SubscriptionStatusSubscribed, subscriberFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("SubscriptionService.GetSubscribers: %w", err)
	}
	return subscribers, nil
}

func NewSubscriptionService(subscriptionRepository repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
	}
}
