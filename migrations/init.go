package migrations

import (
	"io/fs"

	users "github.com/goliatone/go-users-graphql"
)

func init() {
	coreFS, err := fs.Sub(users.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return
	}
	Register(coreFS)
}
