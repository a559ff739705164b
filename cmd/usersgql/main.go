package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	users "github.com/goliatone/go-users-graphql"
	"github.com/goliatone/go-users-graphql/activity"
	"github.com/goliatone/go-users-graphql/config"
	"github.com/goliatone/go-users-graphql/graph"
	"github.com/goliatone/go-users-graphql/httpapi"
	"github.com/goliatone/go-users-graphql/migrations"
	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/goliatone/go-users-graphql/registry"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config *gconfig.Container[*config.Config]
	logger *glog.BaseLogger
	repo   types.UserRepository
	srv    router.Server[*fiber.App]
	users  *users.Service
}

func (a *App) Config() *config.Config {
	return a.config.Raw()
}

func (a *App) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("usersgql"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg := gconfig.New(config.Defaults()).WithLogger(lgr.GetLogger("config"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := cfg.Load(ctx); err != nil {
		panic(err)
	}

	app := &App{config: cfg, logger: lgr}
	if app.Config().Debug {
		fmt.Println("============")
		fmt.Println(print.MaybeHighlightJSON(cfg.Raw()))
		fmt.Println("============")
	}

	if err := WithStorage(ctx, app); err != nil {
		panic(err)
	}

	if err := WithUserService(ctx, app); err != nil {
		panic(err)
	}

	if err := WithHTTPServer(ctx, app); err != nil {
		panic(err)
	}

	if err := run(ctx, app); err != nil {
		app.GetLogger("app").Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *App) error {
	addr := app.Config().GetServer().Addr()
	timeout := app.Config().ShutdownTimeout
	logger := app.GetLogger("app")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", addr, "path", app.Config().GraphQL.Path)
		return app.srv.Serve(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", timeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return app.srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func WithStorage(ctx context.Context, app *App) error {
	logger := &loggerAdapter{app.GetLogger("registry")}
	switch app.Config().Storage.Driver {
	case config.StorageSQLite:
		return WithPersistence(ctx, app)
	default:
		app.repo = registry.NewUserRegistry(registry.Config{Logger: logger})
		logger.Info("using in-memory user registry")
		return nil
	}
}

func WithPersistence(ctx context.Context, app *App) error {
	cfg := app.Config().GetPersistence()
	dsn := cfg.GetServer()
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}

	persistence.RegisterModel((*registry.UserRecord)(nil))

	bunClient, err := persistence.New(cfg, db, sqlitedialect.New())
	if err != nil {
		return err
	}
	bunClient.SetLogger(app.GetLogger("persistence"))

	for _, migrationsFS := range migrations.Filesystems() {
		bunClient.RegisterDialectMigrations(
			migrationsFS,
			persistence.WithDialectSourceLabel("."),
			persistence.WithValidationTargets("postgres", "sqlite"),
		)
	}

	if err := bunClient.ValidateDialects(ctx); err != nil {
		app.GetLogger("persistence").Warn("dialect validation failed", "error", err)
	}

	if err := bunClient.Migrate(ctx); err != nil {
		return err
	}

	if report := bunClient.Report(); report != nil && !report.IsZero() {
		app.GetLogger("persistence").Info("migrations applied", "report", report.String())
	}

	if err := migrations.ValidateSchema(ctx, bunClient.DB().DB, cfg.GetDriver()); err != nil {
		return err
	}

	repo, err := registry.NewBunRegistry(registry.BunRegistryConfig{
		DB:     bunClient.DB(),
		Logger: &loggerAdapter{app.GetLogger("registry")},
	})
	if err != nil {
		return err
	}
	if _, err := repo.Seed(ctx); err != nil {
		return err
	}

	app.repo = repo
	return nil
}

func WithUserService(ctx context.Context, app *App) error {
	hooksLogger := app.GetLogger("hooks")
	svc := users.New(users.Config{
		Repository:   app.repo,
		ActivitySink: activity.NewLogSink(&loggerAdapter{app.GetLogger("activity")}),
		FeatureGate:  app.Config().Features,
		Hooks: types.Hooks{
			AfterUserChange: func(_ context.Context, event types.UserEvent) {
				hooksLogger.Info("user changed",
					"action", event.Action,
					"user_id", event.User.ID)
			},
		},
		Logger: &loggerAdapter{app.GetLogger("users")},
	})

	if err := svc.HealthCheck(ctx); err != nil {
		return err
	}

	app.users = svc
	return nil
}

func WithHTTPServer(_ context.Context, app *App) error {
	gqlCfg := app.Config().GraphQL
	schema, err := graph.NewSchema(app.users, graph.SchemaConfig{
		MaxDepth:       gqlCfg.MaxDepth,
		MaxParallelism: gqlCfg.MaxParallelism,
	})
	if err != nil {
		return err
	}

	handler, err := httpapi.New(httpapi.Config{
		Schema: schema,
		Health: app.users,
		Path:   gqlCfg.Path,
		Logger: &loggerAdapter{app.GetLogger("graphql")},
	})
	if err != nil {
		return err
	}

	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return fiber.New(fiber.Config{
			UnescapePath:          true,
			EnablePrintRoutes:     app.Config().Debug,
			StrictRouting:         false,
			DisableStartupMessage: !app.Config().Debug,
		})
	})

	srv.Router().WithLogger(app.GetLogger("router"))
	httpapi.Register(srv.Router(), handler)

	app.srv = srv
	return nil
}

// loggerAdapter adapts glog.Logger to types.Logger
type loggerAdapter struct {
	l glog.Logger
}

func (a *loggerAdapter) Debug(msg string, args ...any) {
	a.l.Debug(msg, args...)
}

func (a *loggerAdapter) Info(msg string, args ...any) {
	a.l.Info(msg, args...)
}

func (a *loggerAdapter) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	a.l.Error(msg, args...)
}
