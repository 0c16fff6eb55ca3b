// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-smite-api/internal/logger"
)

const (
	// DefaultKeepAliveInterval is how often the keeper checks the session.
	DefaultKeepAliveInterval = time.Minute

	// DefaultSessionMaxAge is the age after which the keeper renews a session
	// even if testsession still answers. Hi-Rez sessions expire after 15
	// minutes.
	DefaultSessionMaxAge = 14 * time.Minute
)

// SessionKeeper keeps a client's session usable for long-running callers.
// On every tick it renews the session when testsession is unreachable or the
// session is older than the configured maximum age.
type SessionKeeper struct {
	sessions SessionManager
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	lastCreated time.Time
}

// NewSessionKeeper creates an idle keeper for sessions. Non-positive
// interval and maxAge fall back to [DefaultKeepAliveInterval] and
// [DefaultSessionMaxAge].
func NewSessionKeeper(sessions SessionManager, interval, maxAge time.Duration, log *logger.Logger) *SessionKeeper {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	if maxAge <= 0 {
		maxAge = DefaultSessionMaxAge
	}
	if log == nil {
		log = logger.Nop()
	}

	return &SessionKeeper{
		sessions: sessions,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
		logger:   log,
	}
}

// MarkCreated records that the caller has just created a session itself, so
// the keeper does not renew it before maxAge.
func (k *SessionKeeper) MarkCreated() {
	k.mu.Lock()
	k.lastCreated = k.now()
	k.mu.Unlock()
}

// Check runs one keep-alive round synchronously and reports whether a usable
// session is in place afterwards.
func (k *SessionKeeper) Check(ctx context.Context) bool {
	k.mu.Lock()
	age := k.now().Sub(k.lastCreated)
	k.mu.Unlock()

	if age < k.maxAge && k.sessions.TestSession(ctx) {
		return true
	}

	if err := k.sessions.CreateSession(ctx); err != nil {
		k.logger.Error().Err(err).Dur("age", age).Msg("session renewal failed")
		return false
	}

	k.MarkCreated()
	k.logger.Info().Dur("age", age).Msg("session renewed")
	return true
}

// Start implements [Worker]. It stops any previously running loop, then
// launches a goroutine that calls Check every interval until ctx is
// cancelled or Stop is called.
func (k *SessionKeeper) Start(ctx context.Context) {
	k.Stop()

	k.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	k.wg.Add(1)
	k.mu.Unlock()

	go func() {
		defer k.wg.Done()
		t := time.NewTicker(k.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				k.Check(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the loop and blocks until it has
// fully exited. Safe to call when the keeper is not running.
func (k *SessionKeeper) Stop() {
	k.mu.Lock()
	cancel := k.cancel
	k.cancel = nil
	k.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	k.wg.Wait()
}
