// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be turned
// into a working client before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending detail.
func (cfg *StructuredConfig) validate() error {
	api := cfg.API
	if strings.TrimSpace(api.DevID) == "" || strings.TrimSpace(api.AuthKey) == "" {
		return fmt.Errorf("%w: dev id and auth key are required", ErrInvalidAPIConfigs)
	}
	if !api.Platform.Valid() {
		return fmt.Errorf("%w: unknown platform %s", ErrInvalidAPIConfigs, api.Platform)
	}
	if !api.Format.Valid() {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidAPIConfigs, string(api.Format))
	}
	if api.BaseURL != "" {
		u, err := url.Parse(api.BaseURL)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: base url %q", ErrInvalidAPIConfigs, api.BaseURL)
		}
	}
	if api.RequestTimeout < 0 || api.RateLimit < 0 || api.RateBurst < 0 {
		return fmt.Errorf("%w: negative timeout or rate limit", ErrInvalidAPIConfigs)
	}

	if cfg.Cache.Size < 0 || cfg.Cache.TTL < 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.KeepAliveInterval <= 0 || cfg.Workers.SessionMaxAge <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
