// Package command exposes go-command compatible handlers for the user
// mutations (create, update). Commands are wired by the service layer and can
// be invoked by any transport; the GraphQL resolvers are the default caller.
package command
