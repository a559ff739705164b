package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-router"
	"github.com/goliatone/go-users-graphql/pkg/types"
	graphql "github.com/graph-gophers/graphql-go"
)

// DefaultPath is where the GraphQL endpoint is mounted when Config.Path is empty.
const DefaultPath = "/graphql"

// HealthPath serves the readiness probe.
const HealthPath = "/healthz"

// HealthChecker is satisfied by *service.Service.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Config wires the handler dependencies.
type Config struct {
	Schema *graphql.Schema
	Health HealthChecker
	Path   string
	Logger types.Logger
}

// Handler serves GraphQL requests and health probes.
type Handler struct {
	schema *graphql.Schema
	health HealthChecker
	path   string
	logger types.Logger
}

// New validates cfg and returns a Handler.
func New(cfg Config) (*Handler, error) {
	if cfg.Schema == nil {
		return nil, errors.New("httpapi: schema must be provided")
	}
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}
	return &Handler{
		schema: cfg.Schema,
		health: cfg.Health,
		path:   path,
		logger: logger,
	}, nil
}

// Path returns the GraphQL mount path.
func (h *Handler) Path() string {
	return h.path
}

// Register mounts the GraphQL and health routes.
func Register[T any](r router.Router[T], h *Handler) {
	r.Post(h.path, h.Post())
	r.Get(h.path, h.Get())
	r.Get(HealthPath, h.Health())
}

// Execute runs req against the schema.
func (h *Handler) Execute(ctx context.Context, req Request) *graphql.Response {
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		h.logger.Debug("graphql request returned errors",
			"operation", req.OperationName,
			"errors", len(resp.Errors),
		)
	}
	return resp
}

// Post handles JSON bodies.
func (h *Handler) Post() router.HandlerFunc {
	return func(c router.Context) error {
		req, err := ParseBody(c.Body())
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody(err))
		}
		return c.JSON(http.StatusOK, h.Execute(c.Context(), req))
	}
}

// Get handles query-string requests.
func (h *Handler) Get() router.HandlerFunc {
	return func(c router.Context) error {
		req, err := ParseQueryString(
			c.Query("query", ""),
			c.Query("operationName", ""),
			c.Query("variables", ""),
		)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody(err))
		}
		return c.JSON(http.StatusOK, h.Execute(c.Context(), req))
	}
}

// Health reports 503 when the health checker fails.
func (h *Handler) Health() router.HandlerFunc {
	return func(c router.Context) error {
		if h.health != nil {
			if err := h.health.HealthCheck(c.Context()); err != nil {
				h.logger.Error("health check failed", err)
				return c.JSON(http.StatusServiceUnavailable, map[string]any{
					"status": "unavailable",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	}
}
