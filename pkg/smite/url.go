package smite

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-smite-api/internal/utils"
	"github.com/MKhiriev/go-smite-api/models"
)

// BuildRequestURL returns the signed URL for method:
//
//	{base}/{method}{format}/{devId}/{signature}/{session}/{timestamp}[/{extra...}]
//
// The timestamp and signature are computed fresh on every call. Each
// non-empty extra value is appended after the timestamp; a "/" inside a
// value separates further segments, so composite arguments such as
// "1737/451" may be passed as one value. Segments are path-escaped.
//
// Returns [ErrMalformedURL] (wrapped) if method is empty or any value
// contains control characters.
func (c *Client) BuildRequestURL(method string, extra ...string) (*url.URL, error) {
	return c.signedURL(method, c.format, true, extra...)
}

func (c *Client) signedURL(method string, format models.ResponseFormat, withSession bool, extra ...string) (*url.URL, error) {
	if strings.TrimSpace(method) == "" {
		return nil, fmt.Errorf("%w: empty method", ErrMalformedURL)
	}

	timestamp := utils.Timestamp(c.now())

	segments := make([]string, 0, 5+len(extra))
	segments = append(segments,
		method+format.WireValue(),
		c.devID,
		utils.Signature(c.devID, method, c.authKey, timestamp),
	)
	if withSession {
		segments = append(segments, c.SessionID())
	}
	segments = append(segments, timestamp)

	for _, e := range extra {
		for _, piece := range strings.Split(e, "/") {
			if piece != "" {
				segments = append(segments, piece)
			}
		}
	}

	return c.assembleURL(segments)
}

// unsignedURL builds {base}/{method}{format}, used by ping.
func (c *Client) unsignedURL(method string) (*url.URL, error) {
	return c.assembleURL([]string{method + c.format.WireValue()})
}

func (c *Client) assembleURL(segments []string) (*url.URL, error) {
	var b strings.Builder
	b.WriteString(c.baseURL)

	for _, s := range segments {
		if strings.ContainsFunc(s, unicode.IsControl) {
			return nil, fmt.Errorf("%w: control character in segment %q", ErrMalformedURL, s)
		}
		b.WriteByte('/')
		b.WriteString(escapeSegment(s))
	}

	u, err := url.Parse(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}

	return u, nil
}

// escapeSegment escapes s as one path segment. Sub-delimiters such as ","
// stay literal so id lists reach the server unchanged.
func escapeSegment(s string) string {
	return strings.ReplaceAll((&url.URL{Path: s}).EscapedPath(), "/", "%2F")
}
