package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_BaseURL(t *testing.T) {
	assert.Equal(t, "http://api.smitegame.com/smiteapi.svc", PlatformPC.BaseURL())
	assert.Equal(t, "http://api.xbox.smitegame.com/smiteapi.svc", PlatformXbox.BaseURL())
	assert.Equal(t, "http://api.ps4.smitegame.com/smiteapi.svc", PlatformPS4.BaseURL())
	assert.Empty(t, Platform(0).BaseURL())
	assert.False(t, Platform(42).Valid())
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{in: "pc", want: PlatformPC},
		{in: "XBOX", want: PlatformXbox},
		{in: " PS4 ", want: PlatformPS4},
		{in: "switch", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatform_TextRoundTrip(t *testing.T) {
	var p Platform
	require.NoError(t, p.UnmarshalText([]byte("Xbox")))
	assert.Equal(t, PlatformXbox, p)

	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Xbox", string(text))

	_, err = Platform(0).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestParseResponseFormat(t *testing.T) {
	f, err := ParseResponseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseResponseFormat("xml")
	require.NoError(t, err)
	assert.Equal(t, "xml", f.WireValue())

	_, err = ParseResponseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestGameMode_IsRanked(t *testing.T) {
	ranked := map[GameMode]bool{
		ConquestRanked: true,
		JoustRanked:    true,
		DuelRanked:     true,
	}

	for _, m := range GameModes() {
		assert.Equal(t, ranked[m], m.IsRanked(), m.String())
	}
}

func TestParseGameMode(t *testing.T) {
	m, err := ParseGameMode("451")
	require.NoError(t, err)
	assert.Equal(t, ConquestRanked, m)

	m, err = ParseGameMode("arena")
	require.NoError(t, err)
	assert.Equal(t, Arena, m)
	assert.Equal(t, "435", m.WireValue())

	_, err = ParseGameMode("999")
	assert.ErrorIs(t, err, ErrUnknownValue)

	_, err = ParseGameMode("Deathmatch")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestParseLanguageCode(t *testing.T) {
	l, err := ParseLanguageCode("german")
	require.NoError(t, err)
	assert.Equal(t, German, l)
	assert.Equal(t, "2", l.WireValue())

	_, err = ParseLanguageCode("4")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestLeagueTier_Names(t *testing.T) {
	assert.Equal(t, "BronzeV", BronzeV.String())
	assert.Equal(t, "GoldIII", GoldIII.String())
	assert.Equal(t, "DiamondI", DiamondI.String())
	assert.Equal(t, "MastersI", MastersI.String())
	assert.Equal(t, "Grandmaster", Grandmaster.String())
	assert.Equal(t, "13", GoldIII.WireValue())
	assert.False(t, LeagueTier(28).Valid())
}

func TestParseLeagueTier(t *testing.T) {
	tier, err := ParseLeagueTier("platinumii")
	require.NoError(t, err)
	assert.Equal(t, PlatinumII, tier)

	tier, err = ParseLeagueTier("27")
	require.NoError(t, err)
	assert.Equal(t, Grandmaster, tier)

	_, err = ParseLeagueTier("0")
	assert.ErrorIs(t, err, ErrUnknownValue)
}
