package command

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-users-graphql/pkg/types"
)

// UserUpdateInput captures the payload for user updates. Only name and email
// change; the record keeps its id.
type UserUpdateInput struct {
	ID     int64
	Input  types.UserInput
	Result *types.User
}

// Type implements gocommand.Message.
func (UserUpdateInput) Type() string {
	return "command.user.update"
}

// Validate implements gocommand.Message.
func (input UserUpdateInput) Validate() error {
	if input.ID <= 0 {
		return ErrUserIDRequired
	}
	return nil
}

// UserUpdateCommand rewrites name and email on existing users.
type UserUpdateCommand struct {
	repo   types.UserRepository
	gate   featuregate.FeatureGate
	clock  types.Clock
	idGen  types.IDGenerator
	sink   types.ActivitySink
	hooks  types.Hooks
	logger types.Logger
}

// UserUpdateCommandConfig wires dependencies for the update command.
type UserUpdateCommandConfig struct {
	Repository  types.UserRepository
	FeatureGate featuregate.FeatureGate
	Clock       types.Clock
	IDGenerator types.IDGenerator
	Activity    types.ActivitySink
	Hooks       types.Hooks
	Logger      types.Logger
}

// NewUserUpdateCommand constructs the update handler.
func NewUserUpdateCommand(cfg UserUpdateCommandConfig) *UserUpdateCommand {
	return &UserUpdateCommand{
		repo:   cfg.Repository,
		gate:   cfg.FeatureGate,
		clock:  safeClock(cfg.Clock),
		idGen:  safeIDGenerator(cfg.IDGenerator),
		sink:   cfg.Activity,
		hooks:  cfg.Hooks,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[UserUpdateInput] = (*UserUpdateCommand)(nil)

// Execute updates the user record and logs audit metadata. A missing record
// yields ErrUserNotFound and leaves the repository untouched.
func (c *UserUpdateCommand) Execute(ctx context.Context, input UserUpdateInput) error {
	if c == nil || c.repo == nil {
		return types.ErrMissingUserRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := ensureMutationsEnabled(ctx, c.gate); err != nil {
		return err
	}

	updated, err := c.repo.UpdateUser(ctx, input.ID, input.Input)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			c.logger.Error("user update failed", err, "user_id", input.ID)
		}
		return err
	}

	occurredAt := now(c.clock)
	record := userActivity("user.updated", *updated, occurredAt, c.idGen)
	logActivity(ctx, c.sink, c.logger, record)
	emitActivityHook(ctx, c.hooks, record)
	emitUserHook(ctx, c.hooks, types.UserEvent{
		Action:     "user.updated",
		User:       *updated,
		OccurredAt: occurredAt,
	})
	c.logger.Debug("user updated", "user_id", updated.ID)

	if input.Result != nil {
		*input.Result = *updated
	}
	return nil
}
