// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by package smite to reach the
// SMITE API.
//
// [HTTPTransport] issues exactly one GET per call through a resty client and
// returns the body verbatim. It performs no retries. An optional client-side
// rate limit spaces out requests so that callers stay within the developer
// quota reported by getdataused.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrServiceUnavailable] for 503).
package adapter
