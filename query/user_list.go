package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-users-graphql/pkg/types"
)

// UserListFilter selects every user; the registry has no filtering.
type UserListFilter struct{}

// Type implements gocommand.Message for query inputs.
func (UserListFilter) Type() string {
	return "query.user.list"
}

// Validate implements gocommand.Message.
func (UserListFilter) Validate() error {
	return nil
}

// UserListQuery returns all users in insertion order.
type UserListQuery struct {
	repo   types.UserRepository
	logger types.Logger
}

// NewUserListQuery constructs the list query.
func NewUserListQuery(repo types.UserRepository, logger types.Logger) *UserListQuery {
	return &UserListQuery{repo: repo, logger: safeLogger(logger)}
}

var _ gocommand.Querier[UserListFilter, []types.User] = (*UserListQuery)(nil)

// Query returns a snapshot of the registry. The result is never nil.
func (q *UserListQuery) Query(ctx context.Context, filter UserListFilter) ([]types.User, error) {
	if q == nil || q.repo == nil {
		return nil, types.ErrMissingUserRepository
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	users, err := q.repo.ListUsers(ctx)
	if err != nil {
		q.logger.Error("user list failed", err)
		return nil, err
	}
	if users == nil {
		users = []types.User{}
	}
	return users, nil
}
