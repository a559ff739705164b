package registry

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/uptrace/bun"
)

// BunRegistryConfig configures the Bun-backed registry.
type BunRegistryConfig struct {
	DB     *bun.DB
	Seed   []types.UserInput
	Logger types.Logger
}

// BunRegistry persists users through bun. Ids come from the table's
// autoincrement key, so they are assigned by the database and never derived
// from the row count.
type BunRegistry struct {
	db     *bun.DB
	seed   []types.UserInput
	logger types.Logger
	mu     sync.Mutex
}

var _ types.UserRepository = (*BunRegistry)(nil)

// NewBunRegistry constructs the SQL registry. The users table must exist; see
// the embedded migrations.
func NewBunRegistry(cfg BunRegistryConfig) (*BunRegistry, error) {
	if cfg.DB == nil {
		return nil, errors.New("bun user registry: db must be provided")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}
	return &BunRegistry{
		db:     cfg.DB,
		seed:   resolveSeed(cfg.Seed),
		logger: logger,
	}, nil
}

// Seed inserts the configured seed rows when the table is empty. It returns
// the number of rows inserted.
func (r *BunRegistry) Seed(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count, err := r.db.NewSelect().Model((*UserRecord)(nil)).Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 || len(r.seed) == 0 {
		return 0, nil
	}
	err = r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, input := range r.seed {
			record := &UserRecord{Name: input.Name, Email: input.Email}
			if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	r.logger.Debug("bun user registry seeded", "count", len(r.seed))
	return len(r.seed), nil
}

// ListUsers returns every row ordered by id, which matches insertion order.
func (r *BunRegistry) ListUsers(ctx context.Context) ([]types.User, error) {
	var records []UserRecord
	if err := r.db.NewSelect().Model(&records).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]types.User, 0, len(records))
	for i := range records {
		out = append(out, *toUser(&records[i]))
	}
	return out, nil
}

// GetUser loads a single row by id.
func (r *BunRegistry) GetUser(ctx context.Context, id int64) (*types.User, error) {
	record := &UserRecord{}
	err := r.db.NewSelect().Model(record).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	return toUser(record), nil
}

// CreateUser inserts a new row and returns it with the assigned id.
func (r *BunRegistry) CreateUser(ctx context.Context, input types.UserInput) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := &UserRecord{Name: input.Name, Email: input.Email}
	res, err := r.db.NewInsert().Model(record).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		record.ID = id
	}
	return toUser(record), nil
}

// UpdateUser overwrites name and email for the row with the given id.
func (r *BunRegistry) UpdateUser(ctx context.Context, id int64, input types.UserInput) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := &UserRecord{ID: id, Name: input.Name, Email: input.Email}
	res, err := r.db.NewUpdate().
		Model(record).
		Column("name", "email").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, types.ErrUserNotFound
	}
	return toUser(record), nil
}
