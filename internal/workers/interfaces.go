// Package workers provides abstractions for managing and running
// background workers next to a SMITE API client.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and the SessionKeeper worker.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_manager_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is a no-op for a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// SessionManager is the part of smite.Client a SessionKeeper needs.
type SessionManager interface {
	CreateSession(ctx context.Context) error
	TestSession(ctx context.Context) bool
}
