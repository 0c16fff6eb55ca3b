package adapter

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/MKhiriev/go-smite-api/internal/utils"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// TransportConfig configures an [HTTPTransport].
type TransportConfig struct {
	// Timeout bounds a single request. Zero means no client-side deadline.
	Timeout time.Duration

	// RateLimit is the sustained number of requests per second. Zero or
	// negative disables limiting.
	RateLimit float64

	// RateBurst is the number of requests allowed in a burst. Defaults to 1
	// when limiting is enabled.
	RateBurst int
}

// HTTPTransport performs single-attempt HTTP GET requests.
// It is safe for concurrent use.
type HTTPTransport struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewHTTPTransport constructs an [HTTPTransport] from cfg.
func NewHTTPTransport(cfg TransportConfig, logger zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{
		client:  utils.NewHTTPClient(cfg.Timeout),
		limiter: newLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:  logger,
	}
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 || math.IsInf(perSecond, 1) {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Get issues one GET to rawURL and returns the response body as text.
//
// Returns an error if rawURL cannot be parsed, the rate limiter wait is
// cancelled, the request fails at the network level, or the server answers
// with a non-2xx status (mapped to the sentinels in errors.go).
func (t *HTTPTransport) Get(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse request url: %w", err)
	}

	if err = t.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, requestID := utils.EnsureRequestID(ctx)
	start := time.Now()

	resp, err := t.client.R().
		SetContext(ctx).
		Get(u.String())
	if err != nil {
		t.logger.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("host", u.Host).
			Dur("duration", time.Since(start)).
			Msg("request failed")
		return "", fmt.Errorf("get request: %w", err)
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Str("host", u.Host).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}
