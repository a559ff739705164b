package command

import (
	"errors"

	"github.com/goliatone/go-users-graphql/pkg/types"
)

var (
	// ErrUserNotFound indicates the requested user was not found.
	ErrUserNotFound = types.ErrUserNotFound
	// ErrUserIDRequired occurs when an update omits the user id.
	ErrUserIDRequired = types.ErrUserIDRequired
	// ErrMutationsDisabled indicates user mutations are switched off via feature gate.
	ErrMutationsDisabled = errors.New("go-users-graphql: user mutations disabled")
)
