package query

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-users-graphql/pkg/types"
)

// UserDetailFilter identifies a single user.
type UserDetailFilter struct {
	ID int64
}

// Type implements gocommand.Message for query inputs.
func (UserDetailFilter) Type() string {
	return "query.user.detail"
}

// Validate implements gocommand.Message. Non-positive ids are allowed and
// simply match nothing.
func (UserDetailFilter) Validate() error {
	return nil
}

// UserDetailResult reports the lookup outcome. Found is false when no record
// matches; that is a normal result, not an error.
type UserDetailResult struct {
	User  *types.User
	Found bool
}

// UserDetailQuery loads one user by id.
type UserDetailQuery struct {
	repo   types.UserRepository
	logger types.Logger
}

// NewUserDetailQuery constructs the detail query.
func NewUserDetailQuery(repo types.UserRepository, logger types.Logger) *UserDetailQuery {
	return &UserDetailQuery{repo: repo, logger: safeLogger(logger)}
}

var _ gocommand.Querier[UserDetailFilter, UserDetailResult] = (*UserDetailQuery)(nil)

// Query returns the matching user or a result with Found set to false.
func (q *UserDetailQuery) Query(ctx context.Context, filter UserDetailFilter) (UserDetailResult, error) {
	if q == nil || q.repo == nil {
		return UserDetailResult{}, types.ErrMissingUserRepository
	}
	if err := filter.Validate(); err != nil {
		return UserDetailResult{}, err
	}
	user, err := q.repo.GetUser(ctx, filter.ID)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return UserDetailResult{}, nil
		}
		q.logger.Error("user detail failed", err, "user_id", filter.ID)
		return UserDetailResult{}, err
	}
	return UserDetailResult{User: user, Found: user != nil}, nil
}
