package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies pending goose migrations from migrationsDir.
// Goose runs on database/sql, so the go-pg options are rebuilt into a
// connection URL for the pgx stdlib driver.
func RunMigrations(ctx context.Context, opt *pg.Options, migrationsDir string) error {
	return runMigrationsURL(ctx, connectionURL(opt), migrationsDir)
}

func runMigrationsURL(ctx context.Context, databaseURL, migrationsDir string) error {
	config, err := pgx.ParseConnectionString(databaseURL)
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func connectionURL(opt *pg.Options) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opt.User, opt.Password),
		Host:     opt.Addr,
		Path:     "/" + opt.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
