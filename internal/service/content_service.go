package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/repository"
	"github.com/maheshrc27/creatordash/internal/transfer"
	"github.com/maheshrc27/creatordash/pkg/dates"
	"github.com/maheshrc27/creatordash/pkg/retry"
)

type ContentService interface {
	Create(ctx context.Context, userID int64, cc *transfer.ContentCreation) (*models.Content, error)
	List(ctx context.Context, userID int64) ([]*models.Content, error)
	Info(ctx context.Context, contentID, userID int64) (*models.Content, error)
	Update(ctx context.Context, userID, contentID int64, cu *transfer.ContentUpdate) error
	UpdateStatus(ctx context.Context, userID, contentID int64, status string) error
	Remove(ctx context.Context, userID, contentID int64) error
}

type contentService struct {
	cr         repository.ContentRepository
	ps         ProfileService
	listPolicy retry.Policy
}

func NewContentService(cr repository.ContentRepository, ps ProfileService, listPolicy retry.Policy) ContentService {
	return &contentService{
		cr:         cr,
		ps:         ps,
		listPolicy: listPolicy,
	}
}

func (s *contentService) Create(ctx context.Context, userID int64, cc *transfer.ContentCreation) (*models.Content, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if cc == nil {
		return nil, fmt.Errorf("%w: content data is nil", ErrInvalidArgument)
	}
	if !models.IsValidContentType(cc.Type) {
		return nil, fmt.Errorf("%w: unknown content type %q", ErrInvalidArgument, cc.Type)
	}
	if !models.IsValidPlatform(cc.Platform) {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalidArgument, cc.Platform)
	}

	// Best-effort preference read; creation itself stores UTC regardless.
	profile, err := s.ps.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	slog.Debug("creating content", "user_id", userID, "timezone", profile.Timezone)

	scheduledAt, err := parseScheduledDate(cc.ScheduledDate)
	if err != nil {
		return nil, err
	}

	status := models.ContentStatusDraft
	if scheduledAt != nil {
		status = models.ContentStatusScheduled
	}

	content := &models.Content{
		UserID:      userID,
		Title:       cc.Title,
		Description: cc.Description,
		Type:        cc.Type,
		Platform:    cc.Platform,
		ScheduledAt: scheduledAt,
		ImageURL:    cc.ImageURL,
		Status:      status,
	}

	id, err := s.cr.Create(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("error creating content: %w", err)
	}
	content.ID = id

	return content, nil
}

func (s *contentService) List(ctx context.Context, userID int64) ([]*models.Content, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	contents, err := retry.Do(ctx, s.listPolicy, func(ctx context.Context) ([]*models.Content, error) {
		return s.cr.ListByUserID(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}
	return contents, nil
}

func (s *contentService) Info(ctx context.Context, contentID, userID int64) (*models.Content, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if contentID == 0 {
		return nil, fmt.Errorf("%w: content id is required", ErrInvalidArgument)
	}

	if err := s.checkOwnership(ctx, contentID, userID); err != nil {
		return nil, err
	}

	content, err := s.cr.GetByID(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("error getting content info: %w", err)
	}

	return content, nil
}

func (s *contentService) Update(ctx context.Context, userID, contentID int64, cu *transfer.ContentUpdate) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if contentID == 0 {
		return fmt.Errorf("%w: content id is required", ErrInvalidArgument)
	}
	if cu == nil {
		return fmt.Errorf("%w: update data is nil", ErrInvalidArgument)
	}

	if cu.Type != nil && !models.IsValidContentType(*cu.Type) {
		return fmt.Errorf("%w: unknown content type %q", ErrInvalidArgument, *cu.Type)
	}
	if cu.Platform != nil && !models.IsValidPlatform(*cu.Platform) {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidArgument, *cu.Platform)
	}
	if cu.Status != nil && !models.IsValidContentStatus(*cu.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, *cu.Status)
	}

	if err := s.checkOwnership(ctx, contentID, userID); err != nil {
		return err
	}

	patch := &transfer.ContentPatch{
		Title:       cu.Title,
		Description: cu.Description,
		Type:        cu.Type,
		Platform:    cu.Platform,
		ImageURL:    cu.ImageURL,
		Status:      cu.Status,
	}

	// An absent scheduled date leaves the column alone; an explicit empty
	// one clears it.
	if cu.ScheduledDate != nil {
		patch.SetScheduledAt = true
		if *cu.ScheduledDate != "" {
			scheduledAt, err := parseScheduledDate(*cu.ScheduledDate)
			if err != nil {
				return err
			}
			patch.ScheduledAt = scheduledAt
		}
	}

	err := s.cr.Update(ctx, contentID, patch)
	if err != nil {
		return fmt.Errorf("error updating content: %w", err)
	}
	return nil
}

func (s *contentService) UpdateStatus(ctx context.Context, userID, contentID int64, status string) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if contentID == 0 {
		return fmt.Errorf("%w: content id is required", ErrInvalidArgument)
	}
	if !models.IsValidContentStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}

	if err := s.checkOwnership(ctx, contentID, userID); err != nil {
		return err
	}

	err := s.cr.UpdateStatus(ctx, status, contentID)
	if err != nil {
		return fmt.Errorf("error updating content status: %w", err)
	}
	return nil
}

func (s *contentService) Remove(ctx context.Context, userID, contentID int64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if contentID == 0 {
		return fmt.Errorf("%w: content id is required", ErrInvalidArgument)
	}

	if err := s.checkOwnership(ctx, contentID, userID); err != nil {
		return err
	}

	return s.cr.Remove(ctx, contentID)
}

func (s *contentService) checkOwnership(ctx context.Context, contentID, userID int64) error {
	isValid, err := s.cr.CheckByUserID(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if !isValid {
		err = fmt.Errorf("%w: content doesn't exist", ErrInvalidArgument)
		slog.Info(err.Error())
		return err
	}
	return nil
}

func parseScheduledDate(localValue string) (*time.Time, error) {
	if localValue == "" {
		return nil, nil
	}
	canonical := dates.ToCanonicalInstant(localValue)
	if canonical == "" {
		err := fmt.Errorf("%w: invalid scheduled date format", ErrInvalidArgument)
		slog.Info(err.Error())
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid scheduled date format", ErrInvalidArgument)
	}
	return &t, nil
}
