package types

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the registry record exposed through the GraphQL API. ID is always
// assigned by the registry.
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserInput carries the caller supplied fields for create and update.
type UserInput struct {
	Name  string
	Email string
}

// UserRepository is the storage contract shared by the in-memory registry and
// the SQL backed registry. Lookups that match nothing return ErrUserNotFound.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, input UserInput) (*User, error)
	UpdateUser(ctx context.Context, id int64, input UserInput) (*User, error)
}

// UserEvent is emitted after a user record is created or updated.
type UserEvent struct {
	Action     string
	User       User
	OccurredAt time.Time
}

// Hooks groups optional callbacks invoked after key workflows complete.
type Hooks struct {
	AfterUserChange func(context.Context, UserEvent)
	AfterActivity   func(context.Context, ActivityRecord)
}

// ActivityRecord describes an audit entry emitted after mutations.
type ActivityRecord struct {
	ID         uuid.UUID
	Verb       string
	ObjectType string
	ObjectID   string
	Channel    string
	Data       map[string]any
	OccurredAt time.Time
}

// ActivitySink is the minimal DI contract for emitting activity.
type ActivitySink interface {
	Log(context.Context, ActivityRecord) error
}

// Clock abstracts time retrieval for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID creation.
type IDGenerator interface {
	UUID() uuid.UUID
}

// Logger captures basic logging hooks used by the service.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Error(msg string, err error, fields ...any)
}

// SystemClock defers to time.Now for production usage.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator produces UUIDv4 identifiers.
type UUIDGenerator struct{}

// UUID returns a randomly generated UUID.
func (UUIDGenerator) UUID() uuid.UUID { return uuid.New() }

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NopLogger) Info(string, ...any) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...any) {}
