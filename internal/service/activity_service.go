package service

import (
	"context"
	"fmt"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/repository"
)

const activityFeedLimit = 20

type ActivityService interface {
	List(ctx context.Context, userID int64) ([]*models.Activity, error)
}

type activityService struct {
	ar repository.ActivityRepository
}

func NewActivityService(ar repository.ActivityRepository) ActivityService {
	return &activityService{
		ar: ar,
	}
}

func (s *activityService) List(ctx context.Context, userID int64) ([]*models.Activity, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	activities, err := s.ar.ListByUserID(ctx, userID, activityFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing activity: %w", err)
	}
	return activities, nil
}
