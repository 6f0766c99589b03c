package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/devtree/internal/domain"
	"github.com/vedran77/devtree/internal/repository"
	"github.com/vedran77/devtree/internal/slug"
	"github.com/vedran77/devtree/internal/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrHandleTaken   = errors.New("handle already in use")
	ErrEmailNotFound = errors.New("email not registered")
	ErrWrongPassword = errors.New("wrong password")
	ErrUserNotFound  = errors.New("user not found")
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.JWT
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.JWT) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Handle   string `json:"handle"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	handle := slug.Make(input.Handle)
	existing, err = s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return fmt.Errorf("checking handle: %w", err)
	}
	if existing != nil {
		return ErrHandleTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Handle:       handle,
		Name:         input.Name,
		Links:        "[]",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The pre-checks above are only a fast path. A concurrent registration
	// can still lose the race, in which case the unique index reports it here.
	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateHandle):
			return ErrHandleTaken
		}
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("looking up email: %w", err)
	}
	if user == nil {
		return "", ErrEmailNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrWrongPassword
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	return signed, nil
}
