// Package exchangerate talks to an open.er-api.com compatible provider:
//
//	GET <base-url>/<CODE>  →  {"result":"success","base_code":"MXN",
//	                           "time_last_update_utc":"...","rates":{"USD":0.05,...}}
//
// Some plans answer with "conversion_rates" instead of "rates"; both are accepted.
package exchangerate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/revesshop/storefront-api/internal/core/domain"
	"github.com/revesshop/storefront-api/internal/pkg/metrics"
)

const maxBodyBytes = 1 << 20

// Client fetches rate snapshots. It performs exactly one request per call.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for baseURL. A nil httpClient selects one with the
// given timeout as a last-resort bound; callers are expected to pass a
// context deadline as well.
func New(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// FetchRates implements ports.RateFetcher.
func (c *Client) FetchRates(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	start := time.Now()
	snap, outcome, err := c.fetch(ctx, base)
	metrics.ExchangeRequestDuration.Observe(time.Since(start).Seconds())
	metrics.ExchangeRequestsTotal.WithLabelValues(outcome).Inc()
	return snap, err
}

func (c *Client) fetch(ctx context.Context, base string) (*domain.RateSnapshot, string, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "upstream_error", fmt.Errorf("exchangerate: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, "timeout", fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, "upstream_error", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, "timeout", fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, "upstream_error", fmt.Errorf("%w: read body: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "upstream_error", fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, "malformed", fmt.Errorf("%w: invalid json", domain.ErrUpstreamUnavailable)
	}

	doc := gjson.ParseBytes(body)
	if result := doc.Get("result").String(); result != "success" {
		return nil, "upstream_error", fmt.Errorf("%w: result %q", domain.ErrUpstreamUnavailable, result)
	}

	rates := doc.Get("rates")
	if !rates.IsObject() {
		rates = doc.Get("conversion_rates")
	}
	if !rates.IsObject() {
		return nil, "malformed", fmt.Errorf("%w: payload has no rates", domain.ErrUpstreamUnavailable)
	}

	snap := &domain.RateSnapshot{
		Base:      doc.Get("base_code").String(),
		UpdatedAt: doc.Get("time_last_update_utc").String(),
		Rates:     make(map[string]float64),
	}
	rates.ForEach(func(code, rate gjson.Result) bool {
		if rate.Type == gjson.Number {
			snap.Rates[code.String()] = rate.Float()
		}
		return true
	})

	return snap, "ok", nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
