// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

// Package migration gates startup on the catalogue schema. It wraps
// golang-migrate: the versioned .sql files under data/migrations create the
// ref, geo, core and social schemas and seed the reference vocabularies,
// and the API refuses to serve traffic until every pending step has been
// applied.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads versioned .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies every pending up migration from migrationsPath against the
// database behind dsn. A dirty version is fatal: a half-applied schema must
// be repaired by hand, never papered over at boot.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, pgx5URL(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		if sourceErr, dbErr := migrator.Close(); sourceErr != nil || dbErr != nil {
			logger.Error("migration_close_failed",
				slog.Any("source_error", sourceErr),
				slog.Any("db_error", dbErr),
			)
		}
	}()

	migrator.Log = &slogBridge{logger: logger}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: schema is dirty at version %d, repair it manually before restarting", version)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema_up_to_date", slog.Int("version", int(version)))
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	applied, _, _ := migrator.Version()
	logger.Info("schema_migrated",
		slog.Int("from_version", int(version)),
		slog.Int("to_version", int(applied)),
	)

	return nil
}

// pgx5URL rewrites postgres:// and postgresql:// DSNs to the pgx5:// scheme
// the golang-migrate pgx/v5 driver registers under.
func pgx5URL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogBridge adapts golang-migrate's Logger interface to slog.
type slogBridge struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (bridge *slogBridge) Printf(format string, args ...any) {
	bridge.logger.Debug(fmt.Sprintf(format, args...))
}

// Verbose implements migrate.Logger.
func (bridge *slogBridge) Verbose() bool {
	return bridge.verbose
}
