package smite

import "errors"

var (
	// ErrInvalidCredentials is returned by CreateSession when the API does not
	// hand out a session id, which happens when the developer id or auth key
	// is wrong.
	ErrInvalidCredentials = errors.New("invalid developer id or auth key")

	// ErrRequestFailed wraps every transport failure: network errors,
	// timeouts and non-2xx responses.
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedURL is returned when a request URL cannot be assembled
	// from the given method or arguments.
	ErrMalformedURL = errors.New("malformed request url")

	// ErrInvalidArgument is returned, without any request being made, when an
	// endpoint argument is missing, empty or not a member of its enum.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRankedQueueRequired is returned, without any request being made, by
	// leaderboard and league endpoints called with a non-ranked queue.
	ErrRankedQueueRequired = errors.New("ranked queue required")

	// ErrUnknownMethod is returned by Call for a method missing from the
	// endpoint table.
	ErrUnknownMethod = errors.New("unknown api method")

	// ErrInvalidConfig is returned by New for empty credentials, an unknown
	// platform or format, or an unusable base URL.
	ErrInvalidConfig = errors.New("invalid client configuration")
)
