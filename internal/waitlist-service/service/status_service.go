package service

import (
	"context"
	"fmt"
	"time"

	"waitlist-backend/internal/waitlist-service/model"
	"waitlist-backend/internal/waitlist-service/repository"

	"github.com/google/uuid"
)

// statusCheckFetchLimit caps a single listing read against the store.
const statusCheckFetchLimit = 1000

type StatusService interface {
	CreateStatusCheck(ctx context.Context, clientName string) (model.StatusCheck, error)
	GetStatusChecks(ctx context.Context) ([]model.StatusCheck, error)
}

type statusService struct {
	statusCheckRepository repository.StatusCheckRepository
}

func (s *statusService) CreateStatusCheck(ctx context.Context, clientName string) (model.StatusCheck, error) {
	check := model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.statusCheckRepository.InsertStatusCheck(ctx, check); err != nil {
		return model.StatusCheck{}, fmt.Errorf("StatusService.CreateStatusCheck: %w", err)
	}
	return check, nil
}

func (s *statusService) GetStatusChecks(ctx context.Context) ([]model.StatusCheck, error) {
	checks, err := s.statusCheckRepository.GetStatusChecks(ctx, statusCheckFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("StatusService.GetStatusChecks: %w", err)
	}
	return checks, nil
}

func NewStatusService(statusCheckRepository repository.StatusCheckRepository) StatusService {
	return &statusService{
		statusCheckRepository: statusCheckRepository,
	}
}
