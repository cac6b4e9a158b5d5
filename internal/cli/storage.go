// filepath: internal/cli/storage.go
package cli

import (
	"context"
	"fmt"

	"people/internal/config"
	"people/internal/repository"
	"people/internal/repository/memory"
	"people/internal/repository/redisstore"
	"people/internal/repository/sqlite"

	"github.com/sirupsen/logrus"
)

// openRepository connects the configured storage backend and prepares it for use.
func openRepository(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.PersonRepository, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return openSQLite(ctx, cfg.Database.Path, logger)
	case config.BackendRedis:
		repo, err := redisstore.Dial(ctx, cfg.Redis.URL, cfg.Redis.Key, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Infof("Using Redis hash '%s'", cfg.Redis.Key)
		return repo, nil
	case config.BackendMemory:
		logger.Warn("Using in-memory storage; people are lost on shutdown")
		return memory.NewRepository(logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}

func openSQLite(ctx context.Context, path string, logger *logrus.Logger) (repository.PersonRepository, error) {
	repo, err := sqlite.NewRepository(path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	if err := repo.EnsureSchemaBootstrapped(ctx); err != nil {
		logger.Errorf("Failed to bootstrap database: %v", err)
		repo.Close()
		return nil, err
	}

	if err := repo.ValidateSchema(ctx); err != nil {
		logger.Error("---------------------------------------------------------------")
		logger.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logger.Error("---------------------------------------------------------------")
		repo.Close()
		return nil, err
	}

	logger.Infof("Using SQLite database '%s'", path)
	return repo, nil
}
