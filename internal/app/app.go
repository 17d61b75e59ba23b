package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/rest"
	"github.com/daniilsolovey/blogicum/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	database := db.New(dbConnect)
	manager := blog.NewManager(database)

	handler := rest.NewHandler(manager, logger).
		WithSecureCookies(cfg.Auth.CookieSecure)
	e, err := handler.RegisterRoutes()
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	rpcServer := rpc.New(logger, manager)
	e.Any("/rpc", echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
