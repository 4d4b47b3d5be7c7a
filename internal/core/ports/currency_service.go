package ports

import (
	"context"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

// RateFetcher is the exchange-rate capability. Implementations return
// domain.ErrUpstreamUnavailable or domain.ErrUpstreamTimeout (possibly wrapped).
type RateFetcher interface {
	FetchRates(ctx context.Context, base string) (*domain.RateSnapshot, error)
}

// ConvertInput holds the raw query values of a conversion request.
type ConvertInput struct {
	Amount string
	From   string
	To     string
}

// ConversionResult is the answer to a conversion request.
type ConversionResult struct {
	Amount float64
	From   string
	To     string
	Rate   float64
	Result float64
}

type CurrencyService interface {
	Rates(ctx context.Context) (*domain.RateSnapshot, error)
	Convert(ctx context.Context, input ConvertInput) (*ConversionResult, error)
}
