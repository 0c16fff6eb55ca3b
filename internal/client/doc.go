// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the smitectl runtime.
//
// It wires the SMITE API client, the session keeper and terminal output into
// a single process lifecycle: one call, or a repeated call under -poll.
package client
