package service

import (
	"context"

	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-users-graphql/command"
	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/goliatone/go-users-graphql/query"
)

// Service is the entry point for go-users-graphql. It wires the repository,
// hooks, and command/query facades supplied by the host application.
type Service struct {
	cfg      Config
	commands Commands
	queries  Queries
}

// Commands exposes the service command handlers.
type Commands struct {
	UserCreate *command.UserCreateCommand
	UserUpdate *command.UserUpdateCommand
}

// Queries exposes read-model helpers.
type Queries struct {
	UserList   *query.UserListQuery
	UserDetail *query.UserDetailQuery
}

// Config captures all required dependencies so callers can provide their own
// instances (in-memory registry, bun registry, sinks, hooks, etc.).
type Config struct {
	Repository   types.UserRepository
	ActivitySink types.ActivitySink
	FeatureGate  featuregate.FeatureGate
	Hooks        types.Hooks
	Clock        types.Clock
	IDGenerator  types.IDGenerator
	Logger       types.Logger
}

// New constructs a Service from the supplied configuration.
func New(cfg Config) *Service {
	s := &Service{cfg: normalizeConfig(cfg)}
	s.commands = s.buildCommands()
	s.queries = s.buildQueries()
	return s
}

func normalizeConfig(cfg Config) Config {
	if cfg.Clock == nil {
		cfg.Clock = types.SystemClock{}
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = types.UUIDGenerator{}
	}
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	return cfg
}

// Commands returns the command facade.
func (s *Service) Commands() Commands {
	return s.commands
}

// Queries returns the query facade.
func (s *Service) Queries() Queries {
	return s.queries
}

// Logger returns the configured logger.
func (s *Service) Logger() types.Logger {
	if s == nil {
		return types.NopLogger{}
	}
	return s.cfg.Logger
}

// Ready reports whether the service has the required dependencies wired in.
func (s *Service) Ready() bool {
	return s != nil && s.cfg.Repository != nil
}

// HealthCheck surfaces missing configuration and verifies the repository can
// serve reads.
func (s *Service) HealthCheck(ctx context.Context) error {
	if !s.Ready() {
		return types.ErrServiceNotReady
	}
	if _, err := s.cfg.Repository.ListUsers(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Service) buildCommands() Commands {
	return Commands{
		UserCreate: command.NewUserCreateCommand(command.UserCreateCommandConfig{
			Repository:  s.cfg.Repository,
			FeatureGate: s.cfg.FeatureGate,
			Clock:       s.cfg.Clock,
			IDGenerator: s.cfg.IDGenerator,
			Activity:    s.cfg.ActivitySink,
			Hooks:       s.cfg.Hooks,
			Logger:      s.cfg.Logger,
		}),
		UserUpdate: command.NewUserUpdateCommand(command.UserUpdateCommandConfig{
			Repository:  s.cfg.Repository,
			FeatureGate: s.cfg.FeatureGate,
			Clock:       s.cfg.Clock,
			IDGenerator: s.cfg.IDGenerator,
			Activity:    s.cfg.ActivitySink,
			Hooks:       s.cfg.Hooks,
			Logger:      s.cfg.Logger,
		}),
	}
}

func (s *Service) buildQueries() Queries {
	return Queries{
		UserList:   query.NewUserListQuery(s.cfg.Repository, s.cfg.Logger),
		UserDetail: query.NewUserDetailQuery(s.cfg.Repository, s.cfg.Logger),
	}
}
