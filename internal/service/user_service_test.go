package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/devtree/internal/domain"
)

func TestUserService_UpdateProfile_Success(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Handle: "ana", Email: "a@x.com"}

	repo := &mockUserRepo{}
	repo.On("GetByHandle", mock.Anything, "ana-nueva").Return(nil, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	s := NewUserService(repo, &mockImageStore{})
	err := s.UpdateProfile(context.Background(), user, UpdateProfileInput{
		Handle:      "Ana Nueva",
		Description: "hola",
		Links:       `[{"url":"https://x.com/ana"}]`,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana-nueva", user.Handle)
	assert.Equal(t, "hola", user.Description)
	assert.Equal(t, `[{"url":"https://x.com/ana"}]`, user.Links)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_KeepOwnHandle(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Handle: "ana"}

	repo := &mockUserRepo{}
	// lookup returns the caller itself, which is not a conflict
	repo.On("GetByHandle", mock.Anything, "ana").Return(user, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	s := NewUserService(repo, &mockImageStore{})
	err := s.UpdateProfile(context.Background(), user, UpdateProfileInput{Handle: "ana", Description: "d"})
	require.NoError(t, err)
}

func TestUserService_UpdateProfile_HandleOwnedByOther(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Handle: "ana"}
	other := &domain.User{ID: uuid.New(), Handle: "bruno"}

	repo := &mockUserRepo{}
	repo.On("GetByHandle", mock.Anything, "bruno").Return(other, nil)

	s := NewUserService(repo, &mockImageStore{})
	err := s.UpdateProfile(context.Background(), user, UpdateProfileInput{Handle: "bruno", Description: "d"})
	assert.ErrorIs(t, err, ErrHandleTaken)

	// caller's stored handle is untouched on conflict
	assert.Equal(t, "ana", user.Handle)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_UploadImage_Success(t *testing.T) {
	user := &domain.User{ID: uuid.New()}
	file := strings.NewReader("png-bytes")

	images := &mockImageStore{}
	images.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, ".png")
	}), file, int64(9), "image/png").Return("http://localhost:9000/devtree-avatars/x.png", nil)

	repo := &mockUserRepo{}
	repo.On("Update", mock.Anything, user).Return(nil)

	s := NewUserService(repo, images)
	url, err := s.UploadImage(context.Background(), user, file, 9, "avatar.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/devtree-avatars/x.png", url)
	assert.Equal(t, url, user.Image)
	images.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUserService_UploadImage_ProviderFails(t *testing.T) {
	user := &domain.User{ID: uuid.New()}

	images := &mockImageStore{}
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("provider down"))

	repo := &mockUserRepo{}

	s := NewUserService(repo, images)
	_, err := s.UploadImage(context.Background(), user, strings.NewReader(""), 0, "a.jpg", "image/jpeg")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_GetByHandle(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetByHandle", mock.Anything, "ana").Return(&domain.User{
		ID:          uuid.New(),
		Email:       "a@x.com",
		Handle:      "ana",
		Name:        "Ana",
		Description: "hola",
		Links:       "[]",
		Image:       "http://img",
	}, nil)

	s := NewUserService(repo, &mockImageStore{})
	profile, err := s.GetByHandle(context.Background(), "ana")
	require.NoError(t, err)

	assert.Equal(t, &domain.PublicProfile{
		Handle:      "ana",
		Name:        "Ana",
		Description: "hola",
		Links:       "[]",
		Image:       "http://img",
	}, profile)
}

func TestUserService_GetByHandle_NotFound(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetByHandle", mock.Anything, "nadie").Return(nil, nil)

	s := NewUserService(repo, &mockImageStore{})
	_, err := s.GetByHandle(context.Background(), "nadie")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_CheckHandle_Available(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetByHandle", mock.Anything, "ana-c").Return(nil, nil)

	s := NewUserService(repo, &mockImageStore{})
	handle, err := s.CheckHandle(context.Background(), "Ana C")
	require.NoError(t, err)
	assert.Equal(t, "ana-c", handle)
}

func TestUserService_CheckHandle_Taken(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("GetByHandle", mock.Anything, "ana-b").Return(&domain.User{ID: uuid.New()}, nil)

	s := NewUserService(repo, &mockImageStore{})
	_, err := s.CheckHandle(context.Background(), "ana-b")
	assert.ErrorIs(t, err, ErrHandleTaken)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	id := uuid.New()
	repo := &mockUserRepo{}
	repo.On("GetByID", mock.Anything, id).Return(nil, nil)

	s := NewUserService(repo, &mockImageStore{})
	_, err := s.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
