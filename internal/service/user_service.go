package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/devtree/internal/domain"
	"github.com/vedran77/devtree/internal/repository"
	"github.com/vedran77/devtree/internal/slug"
)

// ImageStore uploads avatar files and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}

type UserService struct {
	userRepo repository.UserRepository
	images   ImageStore
}

func NewUserService(userRepo repository.UserRepository, images ImageStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		images:   images,
	}
}

type UpdateProfileInput struct {
	Handle      string `json:"handle"`
	Description string `json:"description"`
	Links       string `json:"links"`
}

// UpdateProfile overwrites the mutable profile fields of the session account.
// Only the account resolved from the token is ever mutated.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, input UpdateProfileInput) error {
	handle := slug.Make(input.Handle)

	existing, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return fmt.Errorf("checking handle: %w", err)
	}
	if existing != nil && existing.ID != user.ID {
		return ErrHandleTaken
	}

	user.Handle = handle
	user.Description = input.Description
	user.Links = input.Links
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateHandle) {
			return ErrHandleTaken
		}
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// UploadImage stores the avatar under a random key and persists its URL on
// the session account.
func (s *UserService) UploadImage(ctx context.Context, user *domain.User, file io.Reader, size int64, filename, contentType string) (string, error) {
	key := uuid.New().String() + filepath.Ext(filename)

	url, err := s.images.Upload(ctx, key, file, size, contentType)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	user.Image = url
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("saving image url: %w", err)
	}

	return url, nil
}

// GetByHandle resolves the public profile shown on the handle page.
func (s *UserService) GetByHandle(ctx context.Context, handle string) (*domain.PublicProfile, error) {
	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("looking up handle: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := user.Public()
	return &profile, nil
}

// CheckHandle reports whether the canonical form of the requested handle is
// still free. It returns the slug so the caller can echo it back.
func (s *UserService) CheckHandle(ctx context.Context, raw string) (string, error) {
	handle := slug.Make(raw)

	existing, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return "", fmt.Errorf("looking up handle: %w", err)
	}
	if existing != nil {
		return "", ErrHandleTaken
	}

	return handle, nil
}

// GetByID loads an account by its token-embedded id.
// Used by the authentication middleware.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
