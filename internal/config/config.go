// Package config loads runtime settings for the game.
// It reads defaults, an optional akinator.yaml in the working directory and
// AKINATOR_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all configuration for a game run.
type Config struct {
	// TreePath is where the file store keeps the tree, relative to the working directory.
	TreePath    string      `mapstructure:"tree_path"`
	Store       string      `mapstructure:"store"`
	Redis       RedisConfig `mapstructure:"redis"`
	MetricsAddr string      `mapstructure:"metrics_addr"`
	LogLevel    string      `mapstructure:"log_level"`
	// Plain disables the banner and markdown rendering.
	Plain bool `mapstructure:"plain"`
}

// RedisConfig holds the redis store settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
	// TTL expires the stored tree after the last save. Zero keeps it forever.
	TTL time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TreePath: "akinator.tree",
		Store:    StoreFile,
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "akinator:tree",
		},
		LogLevel: "warn",
	}
}

// Load reads configuration from dir (akinator.yaml, optional) and the environment.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigName("akinator")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("AKINATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot fall back to defaults.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.TreePath == "" {
			return fmt.Errorf("tree_path cannot be empty for the file store")
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr cannot be empty for the redis store")
		}
		if c.Redis.TTL < 0 {
			return fmt.Errorf("redis.ttl cannot be negative, got %s", c.Redis.TTL)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want %s, %s or %s)", c.Store, StoreFile, StoreRedis, StoreMemory)
	}
	return nil
}

// AutomaticEnv only resolves keys viper already knows, so every key gets a default.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("tree_path", d.TreePath)
	v.SetDefault("store", d.Store)
	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.key", d.Redis.Key)
	v.SetDefault("redis.ttl", d.Redis.TTL)
	v.SetDefault("metrics_addr", d.MetricsAddr)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("plain", d.Plain)
}
