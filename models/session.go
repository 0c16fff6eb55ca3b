// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrUnknownValue is returned by the Parse* helpers when the input does not
// name any declared enum member.
var ErrUnknownValue = errors.New("unknown value")

// SessionResponse is the body returned by the createsession endpoint.
// Only SessionID is relied upon; RetMsg and Timestamp are kept for logging.
type SessionResponse struct {
	// RetMsg is the server status message ("Approved" on success).
	RetMsg string `json:"ret_msg"`

	// SessionID is the opaque token to embed in every signed request.
	// Empty when the developer id or auth key were rejected.
	SessionID string `json:"session_id"`

	// Timestamp is the server-side creation time of the session.
	Timestamp string `json:"timestamp"`
}
