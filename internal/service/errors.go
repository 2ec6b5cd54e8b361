package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyTenantID       = errors.New("empty tenant id")
	ErrEmptyCollection     = errors.New("empty collection name")
	ErrUnknownCollection   = errors.New("unknown collection")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrInvalidPayload      = errors.New("payload must be a JSON object")
	ErrInvalidOffset       = errors.New("offset must not be negative")

	// ErrSyncAborted is returned when a run was cancelled by logout, tenant
	// switch or shutdown.
	ErrSyncAborted = errors.New("sync aborted")

	// ErrLocalStore wraps failures of the local store during a run.
	ErrLocalStore = errors.New("local store failure")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
