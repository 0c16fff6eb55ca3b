package smite

import "context"

//go:generate mockgen -source=interfaces.go -destination=../../internal/mock/transport_mock.go -package=mock

// Transport performs a single HTTP GET and returns the response body.
// Implementations must not retry and must return a non-nil error for network
// failures and non-2xx responses. The default implementation is
// adapter.HTTPTransport.
type Transport interface {
	Get(ctx context.Context, rawURL string) (string, error)
}
