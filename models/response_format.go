package models

import (
	"fmt"
	"strings"
)

// ResponseFormat is the serialisation the API is asked to respond with.
// The wire value is appended to every method name in the request path
// (e.g. "getplayer" + "json").
type ResponseFormat string

const (
	FormatJSON ResponseFormat = "json"
	FormatXML  ResponseFormat = "xml"
)

// Valid reports whether f is a supported response format.
func (f ResponseFormat) Valid() bool {
	return f == FormatJSON || f == FormatXML
}

// WireValue returns the path suffix sent to the API.
func (f ResponseFormat) WireValue() string {
	return string(f)
}

func (f ResponseFormat) String() string {
	return string(f)
}

// ParseResponseFormat resolves a case-insensitive format name.
func ParseResponseFormat(s string) (ResponseFormat, error) {
	f := ResponseFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: response format %q", ErrUnknownValue, s)
	}
	return f, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *ResponseFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseResponseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
