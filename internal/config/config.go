// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"people/internal/logging"
	"people/internal/shared"

	"github.com/BurntSushi/toml"
)

// Storage backends selectable with [storage] backend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logging  LoggingConfig  `toml:"logging"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host" mapstructure:"host"`
	Port int    `toml:"port" mapstructure:"port"`
}

// StorageConfig selects where people are kept.
type StorageConfig struct {
	Backend string `toml:"backend" mapstructure:"backend"`
}

// DatabaseConfig holds the SQLite configuration.
type DatabaseConfig struct {
	Path string `toml:"path" mapstructure:"path"`
}

// RedisConfig holds the Redis configuration. Only read with the redis backend.
type RedisConfig struct {
	URL string `toml:"url" mapstructure:"url"`
	Key string `toml:"key" mapstructure:"key"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level" mapstructure:"level"`
	AuditEnabled bool   `toml:"audit_enabled" mapstructure:"audit_enabled"`
}

// SeedConfig points at an optional TOML file of people loaded at startup.
type SeedConfig struct {
	Path string `toml:"path" mapstructure:"path"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080},
		Storage:  StorageConfig{Backend: BackendSQLite},
		Database: DatabaseConfig{Path: "people.db"},
		Redis:    RedisConfig{URL: "redis://localhost:6379/0", Key: "people"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w: %v", shared.ErrorCreateFile, err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w: %v", shared.ErrorEncodeFile, err)
	}
	return nil
}

// ParseAndValidate fills in defaults for missing values and rejects inconsistent settings.
func (c *Config) ParseAndValidate() error {
	def := Default()

	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Database.Path == "" {
			c.Database.Path = def.Database.Path
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("redis backend requires redis.url")
		}
		if c.Redis.Key == "" {
			c.Redis.Key = def.Redis.Key
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend: %q (expected %s, %s or %s)",
			c.Storage.Backend, BackendSQLite, BackendRedis, BackendMemory)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
