package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/revesshop/storefront-api/internal/core/domain"
	"github.com/revesshop/storefront-api/internal/core/ports"
	"github.com/revesshop/storefront-api/internal/pkg/metrics"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenIssuer
	cost   int
	log    zerolog.Logger

	// dummyHash is compared against when the email is unknown so that both
	// login failure paths pay for one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService builds the service. A non-positive cost selects bcrypt.DefaultCost.
func NewAuthService(users ports.UserRepository, tokens *TokenIssuer, cost int, log zerolog.Logger) *AuthService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("revesshop-dummy-password"), cost)
	if err != nil {
		// Only fails for cost > bcrypt.MaxCost.
		panic(err)
	}
	return &AuthService{users: users, tokens: tokens, cost: cost, log: log, dummyHash: dummy}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login never reveals whether the email exists: unknown email and wrong
// password both return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
