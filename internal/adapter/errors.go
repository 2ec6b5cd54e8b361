package adapter

import "errors"

var (
	// ErrTransport covers failures worth retrying: network errors, timeouts,
	// 408, 429 and 5xx responses.
	ErrTransport = errors.New("transport error")

	// ErrUnauthorized means the bearer token was rejected (401) or lacks
	// access (403, also wrapping ErrForbidden). A sync run stops on it and the
	// host has to re-authenticate.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrChunkedUnsupported is returned by FetchChunk when the remote does not
	// serve paginated reads.
	ErrChunkedUnsupported = errors.New("chunked fetch is not supported by remote")

	ErrBadRequest      = errors.New("bad request")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidResponse = errors.New("invalid response")
	ErrEmptyToken      = errors.New("no bearer token set")
)
