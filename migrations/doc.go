// Package migrations collects the embedded SQL migrations for the SQL user
// store and verifies that a migrated database exposes the expected columns.
package migrations
