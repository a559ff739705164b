package graph

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-users-graphql/command"
	"github.com/goliatone/go-users-graphql/pkg/types"
)

const (
	textCodeMutationsDisabled = "USER_MUTATIONS_DISABLED"
	textCodeInternal          = "INTERNAL"
)

// resolverError carries a go-errors payload into the GraphQL error extensions.
type resolverError struct {
	rich *goerrors.Error
}

func (e *resolverError) Error() string {
	return e.rich.Message
}

func (e *resolverError) Unwrap() error {
	return e.rich
}

// Extensions is picked up by graph-gophers when building the response.
func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"category":  e.rich.Category,
		"code":      e.rich.Code,
		"text_code": e.rich.TextCode,
	}
}

// isNotFound reports lookups that match no record. Non-positive ids can never
// match, so they resolve to null as well.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrUserNotFound) || errors.Is(err, types.ErrUserIDRequired)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return &resolverError{rich: rich}
	}
	switch {
	case errors.Is(err, command.ErrMutationsDisabled):
		rich = goerrors.Wrap(err, goerrors.CategoryAuthz, "user mutations are disabled").
			WithCode(goerrors.CodeForbidden).
			WithTextCode(textCodeMutationsDisabled)
	default:
		rich = goerrors.Wrap(err, goerrors.CategoryInternal, "internal error").
			WithCode(goerrors.CodeInternal).
			WithTextCode(textCodeInternal)
	}
	return &resolverError{rich: rich}
}
