// Package sqlite stores the people collection as JSON documents in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"people/internal/db/migrations"
	"people/internal/repository"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	peopleTable      = "people"
	gooseDialect     = "sqlite3"
	migrationsDir    = "."
	connectionPragma = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

var _ repository.PersonRepository = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Logger  *logrus.Logger
}

// NewRepository opens (or creates) the SQLite file at path.
// The schema is not touched; call EnsureSchemaBootstrapped before serving requests.
func NewRepository(path string, logger *logrus.Logger) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path+connectionPragma)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// SQLite allows a single writer; one connection keeps writes serialized.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database %s: %w", path, err)
	}

	return &SQLiteRepository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		Logger:  logger,
	}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteRepository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped applies the embedded goose scripts. It is idempotent.
func (s *SQLiteRepository) EnsureSchemaBootstrapped(ctx context.Context) error {
	if err := configureGoose(s.Logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, s.DB, migrationsDir); err != nil {
		return fmt.Errorf("failed to bootstrap people collection: %w", err)
	}
	return nil
}

// ValidateSchema verifies that the database is at the version of the newest embedded script.
func (s *SQLiteRepository) ValidateSchema(ctx context.Context) error {
	if err := configureGoose(s.Logger); err != nil {
		return err
	}

	expected, err := latestVersion()
	if err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current != expected {
		return fmt.Errorf("database schema is outdated: version %d, expected %d", current, expected)
	}
	return nil
}

func configureGoose(logger *logrus.Logger) error {
	goose.SetBaseFS(migrations.FS)
	if logger != nil {
		goose.SetLogger(logger)
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

func latestVersion() (int64, error) {
	collected, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to collect migrations: %w", err)
	}
	last, err := collected.Last()
	if err != nil {
		if errors.Is(err, goose.ErrNoNextVersion) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find latest migration: %w", err)
	}
	return last.Version, nil
}
