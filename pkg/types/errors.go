package types

import "errors"

var (
	// ErrUserNotFound indicates no record matches the requested id.
	ErrUserNotFound = errors.New("go-users-graphql: user not found")
	// ErrUserIDRequired indicates a user identifier was omitted.
	ErrUserIDRequired = errors.New("go-users-graphql: user id required")
	// ErrMissingUserRepository occurs when the service has no repository wired.
	ErrMissingUserRepository = errors.New("go-users-graphql: missing user repository")
	// ErrMissingActivitySink occurs when a sink wrapper has nothing to forward to.
	ErrMissingActivitySink = errors.New("go-users-graphql: missing activity sink")
	// ErrServiceNotReady indicates required dependencies are missing.
	ErrServiceNotReady = errors.New("go-users-graphql: service not ready")
)
