package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blog-platform/config"
	"github.com/daniilsolovey/blog-platform/internal/blog"
	"github.com/daniilsolovey/blog-platform/internal/db"
	"github.com/daniilsolovey/blog-platform/internal/rest"
	"github.com/daniilsolovey/blog-platform/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

type App struct {
	DB      *db.Repository
	Manager *blog.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(dbConnect)
	manager := blog.NewManager(repo, blogConfig(cfg), logger)
	handler := rest.NewHandler(manager, logger)
	auth := rest.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer)

	return &App{
		DB:      repo,
		Manager: manager,
		Logger:  logger,
		Echo: handler.RegisterRoutes(auth, rpc.New(logger, manager), rest.Options{
			RequestTimeout: cfg.App.RequestTimeout,
			CORSOrigins:    cfg.App.CORSOrigins,
			RateLimit:      cfg.App.RateLimit,
		}),
		Config: cfg,
	}
}

// blogConfig copies the [Blog] section. Unset attempts and backoff fall back to blog defaults.
func blogConfig(cfg config.Config) blog.Config {
	return blog.Config{
		MaxSlugAttempts: cfg.Blog.MaxSlugAttempts,
		ConflictRetries: cfg.Blog.ConflictRetries,
		ConflictBackoff: cfg.Blog.ConflictBackoff,
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service starting", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
