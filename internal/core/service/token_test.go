package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	identity, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity.ID != "u1" || identity.Email != "admin@example.com" || !identity.IsAdmin() {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(&domain.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	issuer.now = time.Now
	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	cases := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": sign(jwt.SigningMethodHS256, []byte("other"), Claims{ID: "u1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}),
		"wrong alg":    sign(jwt.SigningMethodHS512, []byte("secret"), Claims{ID: "u1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}),
		"alg none":     sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{ID: "u1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}),
		"no expiry":    sign(jwt.SigningMethodHS256, []byte("secret"), Claims{ID: "u1"}),
		"no id":        sign(jwt.SigningMethodHS256, []byte("secret"), Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
