package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// x-auth-token HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthTokenHeader is returned by the auth middleware when the
	// incoming request does not include an x-auth-token header at all.
	ErrEmptyAuthTokenHeader = errors.New("empty `x-auth-token` header")

	// ErrMalformedResourceID is returned when a route's {id} segment is
	// not a well-formed UUID.
	ErrMalformedResourceID = errors.New("malformed resource id")
)
