package ports

import (
	"context"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

// UserRepository is the store capability for the usuarios collection.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts the user and returns it with its assigned ID.
	// A uniqueness violation on email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
