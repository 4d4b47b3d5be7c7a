package ports

import (
	"context"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

// RegisterInput carries an already validated signup request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// TokenVerifier turns a bearer token into the caller identity.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}
