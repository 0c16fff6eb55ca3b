// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// smitectl runtime.
//
// All Msg* constants are human-readable status lines printed to stderr or
// written into log entries to describe the outcome of an operation.
package app

const (
	// MsgNoMethodProvided is printed when no API method is given.
	MsgNoMethodProvided = "no method provided, run with -methods to list them"

	// MsgUnknownMethod is printed when the method is not in the endpoint
	// table.
	MsgUnknownMethod = "unknown method"

	// MsgSessionCreated is printed after a successful handshake.
	MsgSessionCreated = "session created"

	// MsgSessionFailed is printed when the handshake is rejected or the
	// request fails.
	MsgSessionFailed = "could not create session"

	// MsgSessionValid is printed when testsession succeeds.
	MsgSessionValid = "session is valid"

	// MsgSessionInvalid is printed when testsession fails.
	MsgSessionInvalid = "session is not valid"

	// MsgPingSucceeded is printed when the API answers ping.
	MsgPingSucceeded = "api is reachable"

	// MsgPingFailed is printed when ping fails.
	MsgPingFailed = "api is unreachable"

	// MsgRequestFailed is printed when an endpoint call fails.
	MsgRequestFailed = "request failed"

	// MsgCopied is printed after the body was copied to the clipboard.
	MsgCopied = "response copied to clipboard"

	// MsgCopyFailed is printed when the clipboard is unavailable.
	MsgCopyFailed = "could not copy to clipboard"

	// MsgPolling is printed once when -poll starts.
	MsgPolling = "polling, press Ctrl+C to stop"
)
