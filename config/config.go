package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-persistence-bun"
)

const (
	// StorageMemory keeps users in the in-process registry.
	StorageMemory = "memory"
	// StorageSQLite keeps users in a bun-managed SQLite database.
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the usersgql binary.
type Config struct {
	Server          ServerConfig      `json:"server"`
	GraphQL         GraphQLConfig     `json:"graphql"`
	Storage         StorageConfig     `json:"storage"`
	Persistence     PersistenceConfig `json:"persistence"`
	Features        FeatureSwitch     `json:"features"`
	Debug           bool              `json:"debug" env:"DEBUG" default:"false"`
	ShutdownTimeout time.Duration     `json:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `json:"host" env:"SERVER_HOST" default:"localhost"`
	Port string `json:"port" env:"SERVER_PORT" default:"4000"`
}

// Addr returns host:port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// GraphQLConfig tunes the GraphQL endpoint.
type GraphQLConfig struct {
	Path           string `json:"path" env:"GRAPHQL_PATH" default:"/graphql"`
	MaxDepth       int    `json:"max_depth" env:"GRAPHQL_MAX_DEPTH" default:"10"`
	MaxParallelism int    `json:"max_parallelism" default:"10"`
}

// StorageConfig selects the user store.
type StorageConfig struct {
	Driver string `json:"driver" env:"STORAGE_DRIVER" default:"memory"`
}

// PersistenceConfig implements persistence.Config interface
type PersistenceConfig struct {
	Debug          bool          `json:"debug" default:"false"`
	Driver         string        `json:"driver" default:"sqlite"`
	Server         string        `json:"server" env:"DB_SERVER" default:"file::memory:?cache=shared"`
	PingTimeout    time.Duration `json:"ping_timeout" default:"5s"`
	OtelIdentifier string        `json:"otel_identifier" default:"go-users-graphql"`
}

func (c PersistenceConfig) GetDebug() bool                { return c.Debug }
func (c PersistenceConfig) GetDriver() string             { return c.Driver }
func (c PersistenceConfig) GetServer() string             { return c.Server }
func (c PersistenceConfig) GetPingTimeout() time.Duration { return c.PingTimeout }
func (c PersistenceConfig) GetOtelIdentifier() string     { return c.OtelIdentifier }

var _ persistence.Config = PersistenceConfig{}

// Defaults returns the configuration used before sources are loaded.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: "4000",
		},
		GraphQL: GraphQLConfig{
			Path:           "/graphql",
			MaxDepth:       10,
			MaxParallelism: 10,
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Persistence: PersistenceConfig{
			Driver:         "sqlite",
			Server:         "file::memory:?cache=shared",
			PingTimeout:    5 * time.Second,
			OtelIdentifier: "go-users-graphql",
		},
		Features:        FeatureSwitch{},
		ShutdownTimeout: 10 * time.Second,
	}
}

// GetServer returns server config
func (c *Config) GetServer() ServerConfig {
	return c.Server
}

// GetPersistence returns persistence config
func (c *Config) GetPersistence() persistence.Config {
	return c.Persistence
}

// Validate implements config.Validable interface
func (c *Config) Validate() error {
	if c == nil {
		return invalid("config is nil")
	}
	if strings.TrimSpace(c.Server.Port) == "" {
		return invalid("server.port is required")
	}
	if !strings.HasPrefix(c.GraphQL.Path, "/") {
		return invalid(fmt.Sprintf("graphql.path must start with '/': %q", c.GraphQL.Path))
	}
	if c.GraphQL.MaxDepth < 0 || c.GraphQL.MaxParallelism < 0 {
		return invalid("graphql limits must not be negative")
	}
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	default:
		return invalid(fmt.Sprintf("storage.driver must be %q or %q, got %q", StorageMemory, StorageSQLite, c.Storage.Driver))
	}
	if c.ShutdownTimeout < 0 {
		return invalid("shutdown_timeout must not be negative")
	}
	return nil
}

func invalid(msg string) error {
	return goerrors.New("go-users-graphql: "+msg, goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode("INVALID_CONFIG")
}

// FeatureSwitch is a static feature gate backed by configuration. Keys that
// are not listed resolve to enabled.
type FeatureSwitch map[string]bool

var _ featuregate.FeatureGate = FeatureSwitch(nil)

// Enabled implements featuregate.FeatureGate.
func (f FeatureSwitch) Enabled(_ context.Context, key string, _ ...featuregate.ResolveOption) (bool, error) {
	enabled, ok := f[key]
	if !ok {
		return true, nil
	}
	return enabled, nil
}
