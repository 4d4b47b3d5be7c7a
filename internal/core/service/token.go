package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the signed token payload: {id, email, rol} plus expiry.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"rol"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for user that expires after the configured TTL.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := t.now()
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature, algorithm and expiry. Every failure collapses
// into domain.ErrInvalidToken.
func (t *TokenIssuer) Verify(token string) (*domain.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Identity{ID: claims.ID, Email: claims.Email, Role: claims.Role}, nil
}
