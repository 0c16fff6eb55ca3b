package smite

import (
	"time"

	"github.com/MKhiriev/go-smite-api/internal/cache"
	"github.com/rs/zerolog"
)

// Option configures a [Client] at construction time.
type Option func(*Client)

// WithBaseURL replaces the platform endpoint, e.g. to go through a proxy or
// to reach a test server. The platform is still validated.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransport replaces the default resty-based transport. When set, the
// timeout and rate-limit options are ignored.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithLogger sets the logger used for request and session events.
// The auth key and signatures are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock sets the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCache keeps bodies of catalog endpoints (gods, items, skins,
// recommended items, league seasons, patch info) for up to ttl in an LRU of
// maxItems entries. maxItems <= 0 disables caching.
func WithCache(maxItems int, ttl time.Duration) Option {
	return func(c *Client) {
		if maxItems <= 0 {
			c.cache = nil
			return
		}
		c.cache = cache.NewResponseCache(maxItems, ttl)
	}
}

// WithTimeout bounds each request of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.transportCfg.Timeout = d
	}
}

// WithRateLimit spaces requests of the default transport to perSecond with
// the given burst. perSecond <= 0 disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.transportCfg.RateLimit = perSecond
		c.transportCfg.RateBurst = burst
	}
}
