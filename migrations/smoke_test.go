package migrations_test

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-users-graphql/migrations"
)

func TestMigrationsApplyToSQLite(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	ctx := context.Background()

	filesystems := migrations.Filesystems()
	require.NotEmpty(t, filesystems)
	for _, fsys := range filesystems {
		require.NoError(t, applyFilesystem(ctx, db, fsys, "sqlite/*.up.sql"))
	}

	require.NoError(t, migrations.ValidateSchema(ctx, db, "sqlite3"))

	res, err := db.ExecContext(ctx, "INSERT INTO users (name, email) VALUES (?, ?)", "John Doe", "johndoe@gmail.com")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestMigrationsShipBothDialects(t *testing.T) {
	for _, fsys := range migrations.Filesystems() {
		postgres, err := fs.Glob(fsys, "*.up.sql")
		require.NoError(t, err)
		sqlite, err := fs.Glob(fsys, "sqlite/*.up.sql")
		require.NoError(t, err)
		require.Len(t, sqlite, len(postgres))
	}
}

func TestValidateSchemaReportsMissingTable(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	err := migrations.ValidateSchema(context.Background(), db, "sqlite")

	var validation *migrations.SchemaValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, []string{"users"}, validation.MissingTables)
}

func TestValidateSchemaReportsMissingColumns(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)")
	require.NoError(t, err)

	err = migrations.ValidateSchema(ctx, db, "sqlite")
	var validation *migrations.SchemaValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, []string{"email"}, validation.MissingColumns["users"])
	require.Contains(t, err.Error(), "users(email)")
}

func TestValidateSchemaRejectsUnknownDialect(t *testing.T) {
	db := openSQLite(t)
	require.Error(t, migrations.ValidateSchema(context.Background(), db, "mysql"))
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func applyFilesystem(ctx context.Context, db *sql.DB, filesystem fs.FS, pattern string) error {
	entries, err := fs.Glob(filesystem, pattern)
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, entry := range entries {
		sqlBytes, err := fs.ReadFile(filesystem, entry)
		if err != nil {
			return err
		}
		for _, stmt := range splitStatements(string(sqlBytes)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
