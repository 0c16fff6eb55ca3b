// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package smite

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-smite-api/internal/adapter"
	"github.com/MKhiriev/go-smite-api/internal/cache"
	"github.com/MKhiriev/go-smite-api/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// NoSession is the session token embedded in signed requests before
// CreateSession has succeeded. The API rejects it, which makes a missing
// handshake visible in the response instead of failing locally.
const NoSession = "CREATE SESSION FIRST"

// Client is a SMITE API client bound to one developer account, platform and
// response format. Credentials and endpoint never change after New; the
// only mutable state is the session token.
//
// A Client is safe for concurrent use. Each call computes its own timestamp
// and signature; the session token is read under a read lock and replaced
// only by CreateSession.
type Client struct {
	devID    string
	authKey  string
	platform models.Platform
	format   models.ResponseFormat
	baseURL  string

	transport    Transport
	transportCfg adapter.TransportConfig
	cache        *cache.ResponseCache
	logger       zerolog.Logger
	now          func() time.Time

	mu        sync.RWMutex
	sessionID string
	handshake singleflight.Group
}

// New constructs a Client for the given developer credentials, platform and
// response format. The session is unset until [Client.CreateSession]
// succeeds.
//
// Returns [ErrInvalidConfig] (wrapped) if a credential is empty, the
// platform or format is unknown, or a base URL override is not an absolute
// http(s) URL.
func New(devID, authKey string, platform models.Platform, format models.ResponseFormat, opts ...Option) (*Client, error) {
	devID = strings.TrimSpace(devID)
	authKey = strings.TrimSpace(authKey)

	if devID == "" || authKey == "" {
		return nil, fmt.Errorf("%w: developer id and auth key are required", ErrInvalidConfig)
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %s", ErrInvalidConfig, platform)
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unknown response format %q", ErrInvalidConfig, string(format))
	}

	c := &Client{
		devID:     devID,
		authKey:   authKey,
		platform:  platform,
		format:    format,
		baseURL:   platform.BaseURL(),
		logger:    zerolog.Nop(),
		now:       time.Now,
		sessionID: NoSession,
	}

	for _, opt := range opts {
		opt(c)
	}

	baseURL, err := normalizeBaseURL(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %w", ErrInvalidConfig, err)
	}
	c.baseURL = baseURL

	if c.transport == nil {
		c.transport = adapter.NewHTTPTransport(c.transportCfg, c.logger)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include http(s) scheme and host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SessionID returns the current session token, or [NoSession] before the
// first successful CreateSession.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// HasSession reports whether CreateSession has succeeded at least once.
// It says nothing about whether the server still accepts the token.
func (c *Client) HasSession() bool {
	return c.SessionID() != NoSession
}

func (c *Client) setSessionID(sessionID string) {
	c.mu.Lock()
	c.sessionID = sessionID
	c.mu.Unlock()
}

// Platform returns the platform the client was built for.
func (c *Client) Platform() models.Platform {
	return c.platform
}

// Format returns the configured response format.
func (c *Client) Format() models.ResponseFormat {
	return c.format
}

// BaseURL returns the endpoint every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
