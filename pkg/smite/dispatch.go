package smite

import (
	"context"
	"fmt"
	"net/url"
)

// Dispatch issues one GET for u and returns the body verbatim. It is also
// the entry point for custom calls built with [Client.BuildRequestURL].
//
// Returns [ErrMalformedURL] for a nil URL and [ErrRequestFailed] (wrapping
// the transport error) for network failures and non-2xx responses. There are
// no retries.
func (c *Client) Dispatch(ctx context.Context, u *url.URL) (string, error) {
	if u == nil {
		return "", fmt.Errorf("%w: nil url", ErrMalformedURL)
	}

	body, err := c.transport.Get(ctx, u.String())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return body, nil
}
