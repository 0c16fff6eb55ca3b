// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package smite is a client for the Hi-Rez SMITE statistics API.
//
// Every request is a GET against a signed, time-stamped path:
//
//	{base}/{method}{format}/{devId}/{signature}/{session}/{timestamp}[/{args...}]
//
// where signature is the lowercase hex MD5 of devId + method + authKey +
// timestamp and timestamp is UTC yyyyMMddHHmmss. A session is obtained once
// with [Client.CreateSession] and then embedded in every call; the client
// never renews it on its own, use [Client.TestSession] to check it.
//
// Endpoint methods return the raw response body (JSON or XML, depending on
// the configured [models.ResponseFormat]); decoding is left to the caller.
//
// Example:
//
//	c, err := smite.New("1004", "23DF3C7E9BD14D84BF892AD206B6755C", models.PlatformPC, models.FormatJSON)
//	if err != nil {
//	    return err
//	}
//	if err = c.CreateSession(ctx); err != nil {
//	    return err // errors.Is(err, smite.ErrInvalidCredentials) for bad keys
//	}
//	body, err := c.GetPlayer(ctx, "Zeus")
package smite
