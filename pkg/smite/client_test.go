// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package smite

import (
	"testing"

	"github.com/MKhiriev/go-smite-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New(testDevID, testAuthKey, models.PlatformXbox, models.FormatXML)

	require.NoError(t, err)
	assert.Equal(t, NoSession, c.SessionID())
	assert.False(t, c.HasSession())
	assert.Equal(t, models.PlatformXbox, c.Platform())
	assert.Equal(t, models.FormatXML, c.Format())
	assert.Equal(t, "http://api.xbox.smitegame.com/smiteapi.svc", c.BaseURL())
	assert.NotNil(t, c.transport)
	assert.Nil(t, c.cache)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		devID    string
		authKey  string
		platform models.Platform
		format   models.ResponseFormat
		opts     []Option
	}{
		{name: "empty dev id", devID: " ", authKey: testAuthKey, platform: models.PlatformPC, format: models.FormatJSON},
		{name: "empty auth key", devID: testDevID, authKey: "", platform: models.PlatformPC, format: models.FormatJSON},
		{name: "unknown platform", devID: testDevID, authKey: testAuthKey, platform: models.Platform(9), format: models.FormatJSON},
		{name: "unknown format", devID: testDevID, authKey: testAuthKey, platform: models.PlatformPC, format: "yaml"},
		{name: "relative base url", devID: testDevID, authKey: testAuthKey, platform: models.PlatformPC, format: models.FormatJSON, opts: []Option{WithBaseURL("/smiteapi.svc")}},
		{name: "ftp base url", devID: testDevID, authKey: testAuthKey, platform: models.PlatformPC, format: models.FormatJSON, opts: []Option{WithBaseURL("ftp://example.com")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.devID, tt.authKey, tt.platform, tt.format, tt.opts...)

			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, c)
		})
	}
}

func TestNew_BaseURLOverrideTrimsSlash(t *testing.T) {
	c, err := New(testDevID, testAuthKey, models.PlatformPC, models.FormatJSON, WithBaseURL("https://proxy.local/smite/"))

	require.NoError(t, err)
	assert.Equal(t, "https://proxy.local/smite", c.BaseURL())
}

func TestNew_WithCache(t *testing.T) {
	c, err := New(testDevID, testAuthKey, models.PlatformPC, models.FormatJSON, WithCache(16, 0))
	require.NoError(t, err)
	assert.NotNil(t, c.cache)

	c, err = New(testDevID, testAuthKey, models.PlatformPC, models.FormatJSON, WithCache(0, 0))
	require.NoError(t, err)
	assert.Nil(t, c.cache)
}
