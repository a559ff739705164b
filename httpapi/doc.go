// Package httpapi mounts the GraphQL schema and a health probe on a go-router
// server. POST bodies and GET query strings are both accepted.
package httpapi
