// Package registry owns the authoritative collection of user records. The
// in-memory UserRegistry is the default; BunRegistry keeps the same contract
// over a bun.DB so hosts can point it at SQLite or Postgres.
package registry
