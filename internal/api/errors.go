package api

import "errors"

var (
	// ErrUnauthorized is returned on HTTP 401. The stored credential is
	// invalid; the caller is expected to wipe local state and re-login.
	// The client itself never clears state.
	ErrUnauthorized = errors.New("api unauthorized")

	// ErrRateLimited is returned when a request kept receiving HTTP 429
	// after exhausting the retry budget.
	ErrRateLimited = errors.New("api rate limited")

	// ErrNotFound is returned on HTTP 404.
	ErrNotFound = errors.New("api resource not found")

	// ErrBadRequest is returned on HTTP 400.
	ErrBadRequest = errors.New("api bad request")

	// ErrServer is returned on HTTP 5xx.
	ErrServer = errors.New("api server error")
)
