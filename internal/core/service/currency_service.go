package service

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/revesshop/storefront-api/internal/core/domain"
	"github.com/revesshop/storefront-api/internal/core/ports"
)

const (
	defaultSourceCurrency  = "USD"
	defaultUpstreamTimeout = 8 * time.Second
)

// CurrencyService answers rate and conversion queries by calling the
// exchange-rate provider on every request.
type CurrencyService struct {
	rates   ports.RateFetcher
	base    string
	timeout time.Duration
	log     zerolog.Logger
}

// NewCurrencyService builds the service. base is the local currency used for
// the rates listing and as the default conversion target.
func NewCurrencyService(rates ports.RateFetcher, base string, timeout time.Duration, log zerolog.Logger) *CurrencyService {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &CurrencyService{
		rates:   rates,
		base:    strings.ToUpper(strings.TrimSpace(base)),
		timeout: timeout,
		log:     log,
	}
}

// Rates returns the base-currency rates restricted to domain.RelevantCurrencies.
func (s *CurrencyService) Rates(ctx context.Context) (*domain.RateSnapshot, error) {
	snap, err := s.fetch(ctx, s.base)
	if err != nil {
		return nil, err
	}
	filtered := snap.Filter(domain.RelevantCurrencies)
	return &filtered, nil
}

// Convert multiplies the amount by the From→To rate, rounded to cents.
func (s *CurrencyService) Convert(ctx context.Context, in ports.ConvertInput) (*ports.ConversionResult, error) {
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	from := currencyCode(in.From, defaultSourceCurrency)
	to := currencyCode(in.To, s.base)

	snap, err := s.fetch(ctx, from)
	if err != nil {
		return nil, err
	}

	rate, ok := snap.Rates[to]
	if !ok || rate == 0 {
		return nil, domain.ErrUnsupportedCurrency
	}

	return &ports.ConversionResult{
		Amount: amount,
		From:   from,
		To:     to,
		Rate:   rate,
		Result: roundCents(amount * rate),
	}, nil
}

func (s *CurrencyService) fetch(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snap, err := s.rates.FetchRates(ctx, base)
	if err != nil {
		s.log.Warn().Err(err).Str("base", base).Msg("exchange rate fetch failed")
		return nil, err
	}
	return snap, nil
}

var leadingDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// parseAmount reads the decimal at the start of raw, so "12abc" is 12.
// NaN, infinities and input without a leading number are rejected.
func parseAmount(raw string) (float64, error) {
	prefix := leadingDecimal.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return 0, domain.ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, domain.ErrInvalidAmount
	}
	return amount, nil
}

func currencyCode(raw, fallback string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return fallback
	}
	return code
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
