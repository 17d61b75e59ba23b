package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blogicum/config"
	_ "github.com/daniilsolovey/blogicum/docs"
	"github.com/daniilsolovey/blogicum/internal/app"
	"github.com/daniilsolovey/blogicum/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply pending migrations before start")
	cfg       config.Config
	lg        *slog.Logger
)

// @title Blogicum API
// @version 1.0
// @description Read-only API over published blog posts
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if *flMigrate {
		if err := db.RunMigrations(context.Background(), &cfg.Database, "migrations"); err != nil {
			exitOnError(err)
		}
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(context.Background()); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service, err := app.New(&cfg, dbc, lg)
	if err != nil {
		dbc.Close()
		exitOnError(err)
	}
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
