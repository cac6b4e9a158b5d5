// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"people/internal/config"
	"people/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "PEOPLE"
	defaultConfigPath = "config.toml"
)

// overridable maps configuration keys to the flag that overrides them.
// Each key can also be set through PEOPLE_<KEY> with dots replaced by underscores,
// e.g. PEOPLE_SERVER_PORT.
var overridable = map[string]string{
	"server.host":           "host",
	"server.port":           "port",
	"storage.backend":       "storage",
	"database.path":         "db-path",
	"redis.url":             "redis-url",
	"redis.key":             "redis-key",
	"logging.level":         "log-level",
	"logging.audit_enabled": "audit-enabled",
	"seed.path":             "seed",
}

func registerFlags(cmd *cobra.Command, options *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: PEOPLE_CONFIG_PATH)")
	flags.String("log-level", "", "Logging level (trace, debug, info, warn, error). (Env: PEOPLE_LOGGING_LEVEL)")
	flags.String("host", "", "Interface the HTTP server binds to. (Env: PEOPLE_SERVER_HOST)")
	flags.Int("port", 0, "Port for the HTTP server. (Env: PEOPLE_SERVER_PORT)")
	flags.String("storage", "", "Storage backend: sqlite, redis or memory. (Env: PEOPLE_STORAGE_BACKEND)")
	flags.String("db-path", "", "Path of the SQLite database file. (Env: PEOPLE_DATABASE_PATH)")
	flags.String("redis-url", "", "Redis connection URL. (Env: PEOPLE_REDIS_URL)")
	flags.String("redis-key", "", "Redis hash holding the people collection. (Env: PEOPLE_REDIS_KEY)")
	flags.Bool("audit-enabled", false, "Enable audit logging of changes. (Env: PEOPLE_LOGGING_AUDIT_ENABLED=true)")
	flags.String("seed", "", "Path to a TOML file of people loaded at startup. (Env: PEOPLE_SEED_PATH)")
}

// initializeConfig loads the TOML file and applies overrides.
// Precedence: flag > environment > file > default.
func initializeConfig(cmd *cobra.Command, options *GlobalOptions) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 1. Config path: the flag wins over PEOPLE_CONFIG_PATH
	cfgFile := options.CfgFilePath
	if !cmd.Flags().Changed("config_path") {
		if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" {
			cfgFile = envPath
		}
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Rely on defaults, env and flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}
	options.CfgFilePath = cfgFile

	// 2. Overrides
	if err := bindOverrides(v, cmd.Flags()); err != nil {
		return err
	}
	applyOverrides(cfg, v)

	// 3. Defaults and validation
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Logging
	logging.Init(cfg.Logging.Level)
	options.Logger = logging.Log
	options.Conf = cfg

	return nil
}

// bindOverrides binds every overridable key to its environment variable and,
// when the command defines it, to its flag.
func bindOverrides(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flagName := range overridable {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
		if f := flags.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}
	return nil
}

// applyOverrides copies every key viper considers set (a changed flag or a present
// environment variable) onto cfg. Keys that are not set keep their file value.
func applyOverrides(c *config.Config, v *viper.Viper) {
	if v.IsSet("server.host") {
		c.Server.Host = v.GetString("server.host")
	}
	if v.IsSet("server.port") {
		c.Server.Port = v.GetInt("server.port")
	}
	if v.IsSet("storage.backend") {
		c.Storage.Backend = v.GetString("storage.backend")
	}
	if v.IsSet("database.path") {
		c.Database.Path = v.GetString("database.path")
	}
	if v.IsSet("redis.url") {
		c.Redis.URL = v.GetString("redis.url")
	}
	if v.IsSet("redis.key") {
		c.Redis.Key = v.GetString("redis.key")
	}
	if v.IsSet("logging.level") {
		c.Logging.Level = v.GetString("logging.level")
	}
	if v.IsSet("logging.audit_enabled") {
		c.Logging.AuditEnabled = v.GetBool("logging.audit_enabled")
	}
	if v.IsSet("seed.path") {
		c.Seed.Path = v.GetString("seed.path")
	}
}
