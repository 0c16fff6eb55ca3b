// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes request signing and timestamps, request-id propagation through
// context, and HTTP client initialization.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request identifier attached
// to every outgoing API call. The identifier only appears in logs; it is
// never sent to the API.
var RequestIDCtxKey = contextKey("requestID")

// NewRequestID returns a time-ordered UUIDv7, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the id and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}

// EnsureRequestID returns ctx unchanged when it already carries a request
// id, otherwise a derived context with a fresh one. The id is returned too.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if requestID, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, requestID
	}

	requestID := NewRequestID()
	return WithRequestID(ctx, requestID), requestID
}
