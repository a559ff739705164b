// Package graph binds the GraphQL contract in schema.graphql to the user
// service. The SDL is the only description of the API: graph-gophers parses it
// at startup and rejects resolvers that do not match it.
package graph
