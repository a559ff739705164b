package registry

import (
	"context"
	"sync"

	"github.com/goliatone/go-users-graphql/pkg/types"
)

// Config configures the in-memory registry. A nil Seed loads DefaultSeed; an
// empty non-nil Seed starts the registry empty.
type Config struct {
	Seed   []types.UserInput
	Logger types.Logger
}

// UserRegistry keeps user records in insertion order. Ids come from a counter
// that only moves forward inside the write lock, so they are never reused.
type UserRegistry struct {
	mu     sync.RWMutex
	users  []types.User
	nextID int64
	seed   []types.UserInput
	logger types.Logger
}

var _ types.UserRepository = (*UserRegistry)(nil)

// NewUserRegistry provisions a registry loaded with the configured seed.
func NewUserRegistry(cfg Config) *UserRegistry {
	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}
	r := &UserRegistry{
		seed:   resolveSeed(cfg.Seed),
		logger: logger,
	}
	r.Reset()
	return r
}

// Reset drops every record and reloads the seed, restarting ids at 1.
func (r *UserRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make([]types.User, 0, len(r.seed))
	r.nextID = 0
	for _, input := range r.seed {
		r.appendLocked(input)
	}
	r.logger.Debug("user registry seeded", "count", len(r.users))
}

// ListUsers returns a snapshot of every record in insertion order.
func (r *UserRegistry) ListUsers(context.Context) ([]types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// GetUser returns the first record with the given id.
func (r *UserRegistry) GetUser(_ context.Context, id int64) (*types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, types.ErrUserNotFound
	}
	user := r.users[idx]
	return &user, nil
}

// CreateUser appends a record built from the input. Name and email are stored
// verbatim.
func (r *UserRegistry) CreateUser(_ context.Context, input types.UserInput) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.appendLocked(input)
	return &user, nil
}

// UpdateUser replaces name and email of the matching record in place. The id
// and the position of the record are kept.
func (r *UserRegistry) UpdateUser(_ context.Context, id int64, input types.UserInput) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, types.ErrUserNotFound
	}
	r.users[idx].Name = input.Name
	r.users[idx].Email = input.Email
	user := r.users[idx]
	return &user, nil
}

// Len reports the current number of records.
func (r *UserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRegistry) appendLocked(input types.UserInput) types.User {
	r.nextID++
	user := types.User{
		ID:    r.nextID,
		Name:  input.Name,
		Email: input.Email,
	}
	r.users = append(r.users, user)
	return user
}

func (r *UserRegistry) indexLocked(id int64) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
