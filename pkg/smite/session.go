package smite

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smite-api/models"
	"github.com/goccy/go-json"
)

const (
	methodCreateSession = "createsession"
	methodTestSession   = "testsession"
	methodPing          = "ping"
)

// CreateSession authenticates the developer id and auth key and stores the
// returned session id for all subsequent signed requests. It must be called
// before any endpoint method and again whenever the server stops accepting
// the session (see [Client.TestSession]).
//
// The handshake always requests JSON, independent of the configured format.
// Concurrent callers share one in-flight handshake. The handshake is not
// bound to any single caller's cancellation; a cancelled caller stops
// waiting and gets ctx.Err() while the others still receive the result.
//
// Returns [ErrInvalidCredentials] (wrapped) if the response carries no
// session id, or [ErrRequestFailed] (wrapped) if the request itself fails.
// On error the previous session token is kept.
func (c *Client) CreateSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	shared := context.WithoutCancel(ctx)
	ch := c.handshake.DoChan(methodCreateSession, func() (any, error) {
		return nil, c.createSession(shared)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (c *Client) createSession(ctx context.Context) error {
	u, err := c.signedURL(methodCreateSession, models.FormatJSON, false)
	if err != nil {
		return fmt.Errorf("create session url: %w", err)
	}

	body, err := c.Dispatch(ctx, u)
	if err != nil {
		c.logger.Warn().Err(err).Msg("create session request failed")
		return fmt.Errorf("create session: %w", err)
	}

	sessionID, err := parseSessionID(body)
	if err != nil {
		c.logger.Warn().Err(err).Str("dev_id", c.devID).Msg("session rejected")
		return err
	}

	c.setSessionID(sessionID)
	c.logger.Info().Str("dev_id", c.devID).Msg("session created")

	return nil
}

func parseSessionID(body string) (string, error) {
	var resp models.SessionResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return "", fmt.Errorf("%w: decode session response: %w", ErrInvalidCredentials, err)
	}

	sessionID := strings.TrimSpace(resp.SessionID)
	if sessionID == "" {
		if resp.RetMsg != "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidCredentials, resp.RetMsg)
		}
		return "", ErrInvalidCredentials
	}

	return sessionID, nil
}

// TestSession reports whether the testsession endpoint is reachable with
// the current session. Only transport success is checked; the body is not
// inspected.
func (c *Client) TestSession(ctx context.Context) bool {
	u, err := c.BuildRequestURL(methodTestSession)
	if err != nil {
		return false
	}

	_, err = c.Dispatch(ctx, u)
	return err == nil
}

// Ping reports whether the API answers the unsigned ping endpoint. No
// session or signature is required.
func (c *Client) Ping(ctx context.Context) bool {
	u, err := c.unsignedURL(methodPing)
	if err != nil {
		return false
	}

	_, err = c.Dispatch(ctx, u)
	return err == nil
}
