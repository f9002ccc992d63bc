package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/transfer"
	"github.com/maheshrc27/creatordash/pkg/retry"
)

type fakeContentRepo struct {
	created    *models.Content
	createErr  error
	getResult  *models.Content
	getErr     error
	listResult []*models.Content
	listErr    error
	listCalls  int
	owns       bool
	ownsErr    error
	patchID    int64
	patch      *transfer.ContentPatch
	updateErr  error
	statusSet  string
	statusID   int64
	removedID  int64
	removeErr  error
}

func (f *fakeContentRepo) Create(ctx context.Context, content *models.Content) (int64, error) {
	f.created = content
	if f.createErr != nil {
		return 0, f.createErr
	}
	return 7, nil
}

func (f *fakeContentRepo) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	return f.getResult, f.getErr
}

func (f *fakeContentRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Content, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeContentRepo) Update(ctx context.Context, id int64, patch *transfer.ContentPatch) error {
	f.patchID = id
	f.patch = patch
	return f.updateErr
}

func (f *fakeContentRepo) UpdateStatus(ctx context.Context, status string, contentID int64) error {
	f.statusSet = status
	f.statusID = contentID
	return nil
}

func (f *fakeContentRepo) CheckByUserID(ctx context.Context, contentID, userID int64) (bool, error) {
	return f.owns, f.ownsErr
}

func (f *fakeContentRepo) Remove(ctx context.Context, id int64) error {
	f.removedID = id
	return f.removeErr
}

type stubProfileService struct {
	profile *models.Profile
}

func (s *stubProfileService) GetUserProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if s.profile != nil {
		return s.profile, nil
	}
	return DefaultProfile(), nil
}

func (s *stubProfileService) UpdateTimezone(ctx context.Context, userID int64, timezone string) error {
	return nil
}

func newTestContentService(repo *fakeContentRepo) ContentService {
	return NewContentService(repo, &stubProfileService{}, retry.Policy{MaxAttempts: 3})
}

func strPtr(s string) *string { return &s }

func TestCreateDerivesDraftStatus(t *testing.T) {
	repo := &fakeContentRepo{}
	s := newTestContentService(repo)

	content, err := s.Create(context.Background(), 1, &transfer.ContentCreation{
		Title:       "Launch teaser",
		Description: "short teaser",
		Type:        models.ContentTypePost,
		Platform:    models.PlatformInstagram,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusDraft, content.Status)
	assert.Nil(t, content.ScheduledAt)
	assert.Equal(t, int64(7), content.ID)
}

func TestCreateDerivesScheduledStatus(t *testing.T) {
	repo := &fakeContentRepo{}
	s := newTestContentService(repo)

	content, err := s.Create(context.Background(), 1, &transfer.ContentCreation{
		Title:         "Launch video",
		Description:   "full cut",
		Type:          models.ContentTypeVideo,
		Platform:      models.PlatformYoutube,
		ScheduledDate: "2030-05-01T10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusScheduled, content.Status)
	require.NotNil(t, content.ScheduledAt)

	local, err := time.ParseInLocation("2006-01-02T15:04", "2030-05-01T10:00", time.Local)
	require.NoError(t, err)
	assert.True(t, content.ScheduledAt.Equal(local))
}

func TestCreateRequiresAuthentication(t *testing.T) {
	s := newTestContentService(&fakeContentRepo{})

	_, err := s.Create(context.Background(), 0, &transfer.ContentCreation{
		Title:    "x",
		Type:     models.ContentTypePost,
		Platform: models.PlatformTwitter,
	})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	s := newTestContentService(&fakeContentRepo{})

	_, err := s.Create(context.Background(), 1, &transfer.ContentCreation{
		Title:    "x",
		Type:     "story",
		Platform: models.PlatformTwitter,
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Create(context.Background(), 1, &transfer.ContentCreation{
		Title:    "x",
		Type:     models.ContentTypePost,
		Platform: "myspace",
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateRejectsBadScheduledDate(t *testing.T) {
	s := newTestContentService(&fakeContentRepo{})

	_, err := s.Create(context.Background(), 1, &transfer.ContentCreation{
		Title:         "x",
		Type:          models.ContentTypePost,
		Platform:      models.PlatformTwitter,
		ScheduledDate: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListRetriesUntilBudgetExhausted(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &fakeContentRepo{listErr: repoErr}
	s := newTestContentService(repo)

	_, err := s.List(context.Background(), 1)
	assert.ErrorIs(t, err, repoErr)
	assert.Equal(t, 3, repo.listCalls)
}

func TestListReturnsItems(t *testing.T) {
	repo := &fakeContentRepo{listResult: []*models.Content{{ID: 1}, {ID: 2}}}
	s := newTestContentService(repo)

	contents, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, contents, 2)
	assert.Equal(t, 1, repo.listCalls)
}

func TestUpdateRequiresContentID(t *testing.T) {
	s := newTestContentService(&fakeContentRepo{owns: true})

	err := s.Update(context.Background(), 1, 0, &transfer.ContentUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateLeavesUnspecifiedFieldsAlone(t *testing.T) {
	repo := &fakeContentRepo{owns: true}
	s := newTestContentService(repo)

	err := s.Update(context.Background(), 1, 9, &transfer.ContentUpdate{
		Description: strPtr("new description"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.patch)
	assert.Nil(t, repo.patch.Title)
	require.NotNil(t, repo.patch.Description)
	assert.Equal(t, "new description", *repo.patch.Description)
	assert.False(t, repo.patch.SetScheduledAt)
	assert.Equal(t, int64(9), repo.patchID)
}

func TestUpdateClearsScheduledDateExplicitly(t *testing.T) {
	repo := &fakeContentRepo{owns: true}
	s := newTestContentService(repo)

	err := s.Update(context.Background(), 1, 9, &transfer.ContentUpdate{
		ScheduledDate: strPtr(""),
	})
	require.NoError(t, err)
	assert.True(t, repo.patch.SetScheduledAt)
	assert.Nil(t, repo.patch.ScheduledAt)
}

func TestUpdateSetsScheduledDate(t *testing.T) {
	repo := &fakeContentRepo{owns: true}
	s := newTestContentService(repo)

	err := s.Update(context.Background(), 1, 9, &transfer.ContentUpdate{
		ScheduledDate: strPtr("2030-05-01T10:00"),
	})
	require.NoError(t, err)
	assert.True(t, repo.patch.SetScheduledAt)
	assert.NotNil(t, repo.patch.ScheduledAt)
}

func TestUpdateRejectsForeignContent(t *testing.T) {
	repo := &fakeContentRepo{owns: false}
	s := newTestContentService(repo)

	err := s.Update(context.Background(), 1, 9, &transfer.ContentUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, repo.patch)
}

func TestUpdateStatusValidatesEnum(t *testing.T) {
	repo := &fakeContentRepo{owns: true}
	s := newTestContentService(repo)

	err := s.UpdateStatus(context.Background(), 1, 9, "deleted")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = s.UpdateStatus(context.Background(), 1, 9, models.ContentStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusArchived, repo.statusSet)
	assert.Equal(t, int64(9), repo.statusID)
}

func TestRemovePropagatesRepoFailure(t *testing.T) {
	repoErr := errors.New("row is locked")
	repo := &fakeContentRepo{owns: true, removeErr: repoErr}
	s := newTestContentService(repo)

	err := s.Remove(context.Background(), 1, 9)
	assert.Equal(t, repoErr, err)
	assert.Equal(t, int64(9), repo.removedID)
}

func TestRemoveRejectsUnknownContent(t *testing.T) {
	repo := &fakeContentRepo{owns: false}
	s := newTestContentService(repo)

	err := s.Remove(context.Background(), 1, 9)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, repo.removedID)
}
