// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and blocks until it is done or ctx
	// is cancelled.
	Run(ctx context.Context, args []string) error
}

// API is the part of smite.Client the runtime drives.
type API interface {
	CreateSession(ctx context.Context) error
	TestSession(ctx context.Context) bool
	Ping(ctx context.Context) bool
	Call(ctx context.Context, method string, args ...string) (string, error)
}
