package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/repository"
	"github.com/maheshrc27/creatordash/pkg/retry"
)

type ProfileService interface {
	GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateTimezone(ctx context.Context, userID int64, timezone string) error
}

type profileService struct {
	pr          repository.ProfileRepository
	fetchPolicy retry.Policy
}

func NewProfileService(pr repository.ProfileRepository, fetchPolicy retry.Policy) ProfileService {
	return &profileService{
		pr:          pr,
		fetchPolicy: fetchPolicy,
	}
}

// DefaultProfile is the fallback returned when the profile store is
// unreachable: no identity, UTC timezone. Callers must treat it as
// best-effort, not authoritative.
func DefaultProfile() *models.Profile {
	return &models.Profile{Timezone: models.DefaultTimezone}
}

func (s *profileService) GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	profile, err := retry.Do(ctx, s.fetchPolicy, func(ctx context.Context) (*models.Profile, error) {
		profile, isExist, err := s.pr.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !isExist {
			return nil, errors.New("profile for given user doesn't exist")
		}
		return profile, nil
	})
	if err != nil {
		// Display code always needs a usable timezone, so an exhausted
		// fetch substitutes the UTC default instead of failing.
		slog.Error("profile fetch failed, falling back to default", "user_id", userID, "error", err)
		return DefaultProfile(), nil
	}

	return profile, nil
}

func (s *profileService) UpdateTimezone(ctx context.Context, userID int64, timezone string) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		err = fmt.Errorf("%w: unknown timezone %q", ErrInvalidArgument, timezone)
		slog.Info(err.Error())
		return err
	}

	err := s.pr.UpdateTimezone(ctx, userID, timezone)
	if err != nil {
		return fmt.Errorf("error updating timezone: %w", err)
	}
	return nil
}
