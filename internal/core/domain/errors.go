package domain

import "errors"

// Account errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Catalog errors.
var ErrProductNotFound = errors.New("product not found")

// Currency errors. The upstream ones map to 502 and 504 respectively.
var (
	ErrInvalidAmount       = errors.New(`parameter "monto" must be a number`)
	ErrUnsupportedCurrency = errors.New("unsupported target currency")
	ErrUpstreamUnavailable = errors.New("exchange rate service unavailable")
	ErrUpstreamTimeout     = errors.New("exchange rate service timed out")
)
