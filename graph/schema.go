package graph

import (
	"context"
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/goliatone/go-users-graphql/service"
)

// SchemaSDL is the GraphQL contract served by the API.
//
//go:embed schema.graphql
var SchemaSDL string

// SchemaConfig tunes schema execution.
type SchemaConfig struct {
	MaxDepth       int
	MaxParallelism int
}

// NewSchema parses SchemaSDL and binds it to a Resolver over svc.
func NewSchema(svc *service.Service, cfg SchemaConfig) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{logger: svc.Logger()}),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
	}
	return graphql.ParseSchema(SchemaSDL, NewResolver(svc), opts...)
}

// MustNewSchema is like NewSchema but panics on error.
func MustNewSchema(svc *service.Service, cfg SchemaConfig) *graphql.Schema {
	schema, err := NewSchema(svc, cfg)
	if err != nil {
		panic(err)
	}
	return schema
}

type panicLogger struct {
	logger types.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql resolver panic", nil, "panic", value)
}
