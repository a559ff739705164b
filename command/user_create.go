package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-users-graphql/pkg/types"
)

// UserCreateInput captures the payload for user creation. Any id supplied by
// the caller is ignored because UserInput carries none.
type UserCreateInput struct {
	Input  types.UserInput
	Result *types.User
}

// Type implements gocommand.Message.
func (UserCreateInput) Type() string {
	return "command.user.create"
}

// Validate implements gocommand.Message. Field presence is enforced by the
// schema layer, so any name and email pass through verbatim.
func (UserCreateInput) Validate() error {
	return nil
}

// UserCreateCommand appends users to the repository.
type UserCreateCommand struct {
	repo   types.UserRepository
	gate   featuregate.FeatureGate
	clock  types.Clock
	idGen  types.IDGenerator
	sink   types.ActivitySink
	hooks  types.Hooks
	logger types.Logger
}

// UserCreateCommandConfig wires dependencies for the create command.
type UserCreateCommandConfig struct {
	Repository  types.UserRepository
	FeatureGate featuregate.FeatureGate
	Clock       types.Clock
	IDGenerator types.IDGenerator
	Activity    types.ActivitySink
	Hooks       types.Hooks
	Logger      types.Logger
}

// NewUserCreateCommand constructs the create handler.
func NewUserCreateCommand(cfg UserCreateCommandConfig) *UserCreateCommand {
	return &UserCreateCommand{
		repo:   cfg.Repository,
		gate:   cfg.FeatureGate,
		clock:  safeClock(cfg.Clock),
		idGen:  safeIDGenerator(cfg.IDGenerator),
		sink:   cfg.Activity,
		hooks:  cfg.Hooks,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[UserCreateInput] = (*UserCreateCommand)(nil)

// Execute creates the user record and logs audit metadata.
func (c *UserCreateCommand) Execute(ctx context.Context, input UserCreateInput) error {
	if c == nil || c.repo == nil {
		return types.ErrMissingUserRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if err := ensureMutationsEnabled(ctx, c.gate); err != nil {
		return err
	}

	created, err := c.repo.CreateUser(ctx, input.Input)
	if err != nil {
		c.logger.Error("user create failed", err)
		return err
	}

	occurredAt := now(c.clock)
	record := userActivity("user.created", *created, occurredAt, c.idGen)
	logActivity(ctx, c.sink, c.logger, record)
	emitActivityHook(ctx, c.hooks, record)
	emitUserHook(ctx, c.hooks, types.UserEvent{
		Action:     "user.created",
		User:       *created,
		OccurredAt: occurredAt,
	})
	c.logger.Debug("user created", "user_id", created.ID)

	if input.Result != nil {
		*input.Result = *created
	}
	return nil
}
