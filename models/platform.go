// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Platform selects which SMITE API deployment a client talks to.
// Each platform has its own base endpoint; credentials are shared.
type Platform int

const (
	// PlatformPC is the PC (Steam / Hi-Rez launcher) deployment.
	PlatformPC Platform = iota + 1

	// PlatformXbox is the Xbox deployment.
	PlatformXbox

	// PlatformPS4 is the PlayStation 4 deployment.
	PlatformPS4
)

var platformBaseURLs = map[Platform]string{
	PlatformPC:   "http://api.smitegame.com/smiteapi.svc",
	PlatformXbox: "http://api.xbox.smitegame.com/smiteapi.svc",
	PlatformPS4:  "http://api.ps4.smitegame.com/smiteapi.svc",
}

var platformNames = map[Platform]string{
	PlatformPC:   "PC",
	PlatformXbox: "Xbox",
	PlatformPS4:  "PS4",
}

// BaseURL returns the API base endpoint of the platform without a trailing
// slash, or an empty string for an unknown platform.
func (p Platform) BaseURL() string {
	return platformBaseURLs[p]
}

// Valid reports whether p is one of the declared platforms.
func (p Platform) Valid() bool {
	_, ok := platformBaseURLs[p]
	return ok
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// ParsePlatform resolves a platform by its case-insensitive name
// ("pc", "xbox", "ps4").
func ParsePlatform(s string) (Platform, error) {
	s = strings.TrimSpace(s)
	for p, name := range platformNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: platform %q", ErrUnknownValue, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so that platforms can be
// read directly from environment variables and JSON config files.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: platform %d", ErrUnknownValue, int(p))
	}
	return []byte(p.String()), nil
}
