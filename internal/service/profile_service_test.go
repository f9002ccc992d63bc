package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/pkg/retry"
)

type fakeProfileRepo struct {
	profile   *models.Profile
	exists    bool
	getErr    error
	getCalls  int
	updatedTz string
	updateErr error
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.Profile, bool, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.profile, f.exists, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, tx *sql.Tx, profile *models.Profile) (int64, error) {
	return 1, nil
}

func (f *fakeProfileRepo) UpdateTimezone(ctx context.Context, userID int64, timezone string) error {
	f.updatedTz = timezone
	return f.updateErr
}

func newTestProfileService(repo *fakeProfileRepo) ProfileService {
	return NewProfileService(repo, retry.Policy{MaxAttempts: 3})
}

func TestGetUserProfileReturnsStoredProfile(t *testing.T) {
	repo := &fakeProfileRepo{
		profile: &models.Profile{ID: 3, UserID: 1, Timezone: "America/New_York"},
		exists:  true,
	}
	s := newTestProfileService(repo)

	profile, err := s.GetUserProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", profile.Timezone)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetUserProfileFallsBackToDefaultAfterRetries(t *testing.T) {
	repo := &fakeProfileRepo{getErr: errors.New("connection refused")}
	s := newTestProfileService(repo)

	profile, err := s.GetUserProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.getCalls)
	assert.Zero(t, profile.ID)
	assert.Zero(t, profile.UserID)
	assert.Equal(t, models.DefaultTimezone, profile.Timezone)
}

func TestGetUserProfileMissingRowFallsBack(t *testing.T) {
	repo := &fakeProfileRepo{exists: false}
	s := newTestProfileService(repo)

	profile, err := s.GetUserProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTimezone, profile.Timezone)
}

func TestGetUserProfileRequiresAuthentication(t *testing.T) {
	s := newTestProfileService(&fakeProfileRepo{})

	_, err := s.GetUserProfile(context.Background(), 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateTimezoneRejectsUnknownZone(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := newTestProfileService(repo)

	err := s.UpdateTimezone(context.Background(), 1, "Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, repo.updatedTz)

	err = s.UpdateTimezone(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateTimezoneWritesPreference(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := newTestProfileService(repo)

	err := s.UpdateTimezone(context.Background(), 1, "Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", repo.updatedTz)
}

func TestUpdateTimezonePropagatesRemoteFailure(t *testing.T) {
	repoErr := errors.New("write failed")
	repo := &fakeProfileRepo{updateErr: repoErr}
	s := newTestProfileService(repo)

	err := s.UpdateTimezone(context.Background(), 1, "UTC")
	assert.ErrorIs(t, err, repoErr)
}

func TestUpdateTimezoneRequiresAuthentication(t *testing.T) {
	s := newTestProfileService(&fakeProfileRepo{})

	err := s.UpdateTimezone(context.Background(), 0, "UTC")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
