package registry

import (
	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/uptrace/bun"
)

// UserRecord represents the schema stored in users.
type UserRecord struct {
	bun.BaseModel `bun:"table:users"`

	ID    int64  `bun:"id,pk,autoincrement"`
	Name  string `bun:"name,notnull"`
	Email string `bun:"email,notnull"`
}

func toUser(record *UserRecord) *types.User {
	if record == nil {
		return nil
	}
	return &types.User{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
	}
}
