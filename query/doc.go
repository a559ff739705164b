// Package query exposes go-command queriers for the read side of the user
// registry.
package query
