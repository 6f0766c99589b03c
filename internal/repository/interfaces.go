package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/devtree/internal/domain"
)

// Unique-constraint violations, reported per index. The services pre-check
// email and handle for friendly conflicts, but the database index is the
// guarantee under concurrent registration.
var (
	ErrDuplicateEmail  = errors.New("duplicate email")
	ErrDuplicateHandle = errors.New("duplicate handle")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByHandle(ctx context.Context, handle string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
