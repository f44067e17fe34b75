package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "waitlist-backend/internal/waitlist-service/errors"
	mockrepository "waitlist-backend/internal/waitlist-service/mocks/repository"
	"waitlist-backend/internal/waitlist-service/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionService_Subscribe(t *testing.T) {
	ctx := context.Background()

	existing := model.EmailSubscription{
		ID:        "uuid-123",
		Email:     "a@b.com",
		Timestamp: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:    model.SubscriptionStatusSubscribed,
	}
	notFound := fmt.Errorf("SubscriptionRepository.GetSubscriptionByEmail: %w", apperrors.ErrSubscriptionNotFound)

	t.Run("Success New email is inserted as subscribed", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
		mockRepo.EXPECT().GetSubscriptionByEmail(ctx, "a@b.com").Return(model.EmailSubscription{}, notFound)
		var inserted model.EmailSubscription
		mockRepo.EXPECT().
			InsertSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, subscription model.EmailSubscription) error {
				inserted = subscription
				return nil
			})

		s := NewSubscriptionService(mockRepo)

		got, alreadySubscribed, err := s.Subscribe(ctx, "a@b.com")

		assert.NoError(t, err)
		assert.False(t, alreadySubscribed)
		assert.Equal(t, inserted, got)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "a@b.com", got.Email)
		assert.Equal(t, model.SubscriptionStatusSubscribed, got.Status)
	})

	t.Run("Success Email is lower-cased before lookup and insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
		mockRepo.EXPECT().GetSubscriptionByEmail(ctx, "user@example.com").Return(model.EmailSubscription{}, notFound)
		mockRepo.EXPECT().
			InsertSubscription(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, subscription model.EmailSubscription) error {
				assert.Equal(t, "user@example.com", subscription.Email)
				return nil
			})

		s := NewSubscriptionService(mockRepo)

		got, alreadySubscribed, err := s.Subscribe(ctx, "User@Example.COM")

		assert.NoError(t, err)
		assert.False(t, alreadySubscribed)
		assert.Equal(t, "user@example.com", got.Email)
	})

	t.Run("Success Existing email short-circuits without insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
		mockRepo.EXPECT().GetSubscriptionByEmail(ctx, "a@b.com").Return(existing, nil)

		s := NewSubscriptionService(mockRepo)

		got, alreadySubscribed, err := s.Subscribe(ctx, "a@b.com")

		assert.NoError(t, err)
		assert.True(t, alreadySubscribed)
		assert.Equal(t, existing, got)
	})

	t.Run("Success Unsubscribed record is not reactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		unsubscribed := existing
		unsubscribed.Status = model.SubscriptionStatusUnsubscribed

		mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
		mockRepo.EXPECT().GetSubscriptionByEmail(ctx, "a@b.com").Return(unsubscribed, nil)

		s := NewSubscriptionService(mockRepo)

		got, alreadySubscribed, err := s.Subscribe(ctx, "a@b.com")

		assert.NoError(t, err)
		assert.True(t, alreadySubscribed)
		assert.Equal(t, model.SubscriptionStatusUnsubscribed, got.Status)
	})

	t.Run("Error Lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
		mockRepo.EXPECT().GetSubscriptionByEmail(ctx, "a@b.com").Return(model.EmailSubscription{}, errors.New("database error"))

		s := NewSubscriptionService(mockRepo)

		_, _, err := s.Subscribe(ctx, "a@b.com")

		assert.Error(t, err)
	})

	t.Run("Error Insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
		mockRepo.EXPECT().GetSubscriptionByEmail(ctx, "a@b.com").Return(model.EmailSubscription{}, notFound)
		mockRepo.EXPECT().InsertSubscription(ctx, gomock.Any()).Return(errors.New("database error"))

		s := NewSubscriptionService(mockRepo)

		_, _, err := s.Subscribe(ctx, "a@b.com")

		assert.Error(t, err)
	})
}

func TestSubscriptionService_GetSubscribers(t *testing.T) {
	ctx := context.Background()

	subscribers := []model.EmailSubscription{
		{ID: "1", Email: "a@b.com", Timestamp: time.Now().UTC(), Status: model.SubscriptionStatusSubscribed},
	}

	testCases := []struct {
		name       string
		setupMocks func(mockRepo *mockrepository.MockSubscriptionRepository)
		output     []model.EmailSubscription
		expectErr  bool
	}{
		{
			name: "Success Only subscribed records are fetched",
			setupMocks: func(mockRepo *mockrepository.MockSubscriptionRepository) {
				mockRepo.EXPECT().GetSubscriptions(ctx, model.SubscriptionStatusSubscribed, int64(10000)).Return(subscribers, nil)
			},
			output:    subscribers,
			expectErr: false,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(mockRepo *mockrepository.MockSubscriptionRepository) {
				mockRepo.EXPECT().GetSubscriptions(ctx, model.SubscriptionStatusSubscribed, int64(10000)).Return(nil, errors.New("database error"))
			},
			output:    nil,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := mockrepository.NewMockSubscriptionRepository(ctrl)
			tc.setupMocks(mockRepo)

			s := NewSubscriptionService(mockRepo)

			got, err := s.GetSubscribers(ctx)

			assert.Equal(t, tc.output, got)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
