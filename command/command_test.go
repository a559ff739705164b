package command

import (
	"context"
	"errors"
	"testing"
	"time"

	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/goliatone/go-users-graphql/registry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserCreateCommand_AppendsAndReturnsResult(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	cmd := NewUserCreateCommand(UserCreateCommandConfig{Repository: repo})

	result := &types.User{}
	err := cmd.Execute(context.Background(), UserCreateInput{
		Input:  types.UserInput{Name: "Amy Lee", Email: "amy@example.com"},
		Result: result,
	})

	require.NoError(t, err)
	require.Equal(t, types.User{ID: 4, Name: "Amy Lee", Email: "amy@example.com"}, *result)
	require.Equal(t, 4, repo.Len())
}

func TestUserCreateCommand_ActivityBeforeHook(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	fixedTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	recordID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	order := make([]string, 0, 3)
	var recorded types.ActivityRecord
	var event types.UserEvent
	sink := &recordingActivitySink{
		onLog: func(r types.ActivityRecord) {
			recorded = r
			order = append(order, "sink")
		},
	}
	hooks := types.Hooks{
		AfterActivity: func(context.Context, types.ActivityRecord) {
			order = append(order, "activity-hook")
		},
		AfterUserChange: func(_ context.Context, evt types.UserEvent) {
			event = evt
			order = append(order, "user-hook")
		},
	}

	cmd := NewUserCreateCommand(UserCreateCommandConfig{
		Repository:  repo,
		Clock:       fixedClock{t: fixedTime},
		IDGenerator: fixedIDGenerator{id: recordID},
		Activity:    sink,
		Hooks:       hooks,
	})

	err := cmd.Execute(context.Background(), UserCreateInput{
		Input: types.UserInput{Name: "Amy Lee", Email: "amy@example.com"},
	})

	require.NoError(t, err)
	require.Equal(t, []string{"sink", "activity-hook", "user-hook"}, order)
	require.Equal(t, recordID, recorded.ID)
	require.Equal(t, "user.created", recorded.Verb)
	require.Equal(t, "user", recorded.ObjectType)
	require.Equal(t, "4", recorded.ObjectID)
	require.Equal(t, "amy@example.com", recorded.Data["email"])
	require.Equal(t, fixedTime, recorded.OccurredAt)
	require.Equal(t, "user.created", event.Action)
	require.Equal(t, int64(4), event.User.ID)
}

func TestUserCreateCommand_SinkFailureDoesNotFail(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	logger := &recordingLogger{}
	cmd := NewUserCreateCommand(UserCreateCommandConfig{
		Repository: repo,
		Activity:   &recordingActivitySink{err: errors.New("sink down")},
		Logger:     logger,
	})

	err := cmd.Execute(context.Background(), UserCreateInput{
		Input: types.UserInput{Name: "Amy Lee", Email: "amy@example.com"},
	})

	require.NoError(t, err)
	require.Equal(t, 4, repo.Len())
	require.Equal(t, []string{"activity sink failed"}, logger.errors)
}

func TestUserCreateCommand_FeatureGateDisabled(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	gate := &stubFeatureGate{enabled: false}
	cmd := NewUserCreateCommand(UserCreateCommandConfig{
		Repository:  repo,
		FeatureGate: gate,
	})

	err := cmd.Execute(context.Background(), UserCreateInput{
		Input: types.UserInput{Name: "Amy Lee", Email: "amy@example.com"},
	})

	require.ErrorIs(t, err, ErrMutationsDisabled)
	require.Equal(t, 3, repo.Len())
	require.Equal(t, []string{FeatureUsersMutations}, gate.keys)
}

func TestUserCreateCommand_FeatureGateError(t *testing.T) {
	boom := errors.New("gate unavailable")
	cmd := NewUserCreateCommand(UserCreateCommandConfig{
		Repository:  registry.NewUserRegistry(registry.Config{}),
		FeatureGate: &stubFeatureGate{err: boom},
	})

	err := cmd.Execute(context.Background(), UserCreateInput{})
	require.ErrorIs(t, err, boom)
}

func TestUserCreateCommand_MissingRepository(t *testing.T) {
	cmd := NewUserCreateCommand(UserCreateCommandConfig{})
	err := cmd.Execute(context.Background(), UserCreateInput{})
	require.ErrorIs(t, err, types.ErrMissingUserRepository)
}

func TestUserUpdateCommand_PreservesID(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	sink := &recordingActivitySink{}
	cmd := NewUserUpdateCommand(UserUpdateCommandConfig{
		Repository: repo,
		Activity:   sink,
	})

	result := &types.User{}
	err := cmd.Execute(context.Background(), UserUpdateInput{
		ID:     1,
		Input:  types.UserInput{Name: "Johnny Doe", Email: "johnny@gmail.com"},
		Result: result,
	})

	require.NoError(t, err)
	require.Equal(t, types.User{ID: 1, Name: "Johnny Doe", Email: "johnny@gmail.com"}, *result)
	require.Len(t, sink.records, 1)
	require.Equal(t, "user.updated", sink.records[0].Verb)
	require.Equal(t, "1", sink.records[0].ObjectID)

	stored, err := repo.GetUser(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Johnny Doe", stored.Name)
}

func TestUserUpdateCommand_NotFound(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	sink := &recordingActivitySink{}
	var hookCalled bool
	cmd := NewUserUpdateCommand(UserUpdateCommandConfig{
		Repository: repo,
		Activity:   sink,
		Hooks: types.Hooks{
			AfterUserChange: func(context.Context, types.UserEvent) { hookCalled = true },
		},
	})

	result := &types.User{}
	err := cmd.Execute(context.Background(), UserUpdateInput{
		ID:     999,
		Input:  types.UserInput{Name: "Ghost", Email: "ghost@example.com"},
		Result: result,
	})

	require.ErrorIs(t, err, ErrUserNotFound)
	require.Equal(t, types.User{}, *result)
	require.Empty(t, sink.records)
	require.False(t, hookCalled)
}

func TestUserUpdateCommand_Validation(t *testing.T) {
	repo := &failingRepo{}
	cmd := NewUserUpdateCommand(UserUpdateCommandConfig{Repository: repo})

	err := cmd.Execute(context.Background(), UserUpdateInput{ID: 0})
	require.ErrorIs(t, err, ErrUserIDRequired)
	require.False(t, repo.called)
}

func TestUserUpdateCommand_RepositoryError(t *testing.T) {
	boom := errors.New("storage offline")
	logger := &recordingLogger{}
	cmd := NewUserUpdateCommand(UserUpdateCommandConfig{
		Repository: &failingRepo{err: boom},
		Logger:     logger,
	})

	err := cmd.Execute(context.Background(), UserUpdateInput{ID: 1})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"user update failed"}, logger.errors)
}

func TestUserUpdateCommand_FeatureGateDisabled(t *testing.T) {
	repo := registry.NewUserRegistry(registry.Config{})
	cmd := NewUserUpdateCommand(UserUpdateCommandConfig{
		Repository:  repo,
		FeatureGate: &stubFeatureGate{enabled: false},
	})

	err := cmd.Execute(context.Background(), UserUpdateInput{
		ID:    1,
		Input: types.UserInput{Name: "Johnny Doe", Email: "johnny@gmail.com"},
	})

	require.ErrorIs(t, err, ErrMutationsDisabled)
	stored, err := repo.GetUser(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "John Doe", stored.Name)
}

func TestMessageTypes(t *testing.T) {
	require.Equal(t, "command.user.create", UserCreateInput{}.Type())
	require.Equal(t, "command.user.update", UserUpdateInput{}.Type())
}

// helpers

type recordingActivitySink struct {
	records []types.ActivityRecord
	onLog   func(types.ActivityRecord)
	err     error
}

func (s *recordingActivitySink) Log(_ context.Context, record types.ActivityRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	if s.onLog != nil {
		s.onLog(record)
	}
	return nil
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

type fixedIDGenerator struct {
	id uuid.UUID
}

func (g fixedIDGenerator) UUID() uuid.UUID {
	return g.id
}

type stubFeatureGate struct {
	enabled bool
	err     error
	keys    []string
}

func (s *stubFeatureGate) Enabled(_ context.Context, key string, _ ...featuregate.ResolveOption) (bool, error) {
	s.keys = append(s.keys, key)
	if s.err != nil {
		return false, s.err
	}
	return s.enabled, nil
}

type failingRepo struct {
	err    error
	called bool
}

func (r *failingRepo) ListUsers(context.Context) ([]types.User, error) {
	r.called = true
	return nil, r.err
}

func (r *failingRepo) GetUser(context.Context, int64) (*types.User, error) {
	r.called = true
	return nil, r.err
}

func (r *failingRepo) CreateUser(context.Context, types.UserInput) (*types.User, error) {
	r.called = true
	return nil, r.err
}

func (r *failingRepo) UpdateUser(context.Context, int64, types.UserInput) (*types.User, error) {
	r.called = true
	return nil, r.err
}

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Debug(string, ...any) {}

func (l *recordingLogger) Info(string, ...any) {}

func (l *recordingLogger) Error(msg string, _ error, _ ...any) {
	l.errors = append(l.errors, msg)
}
