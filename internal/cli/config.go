package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/permkit/permkit/pkg/cache"
)

// Config is the CLI configuration, read from a TOML file. Every field has a
// working default, so running without a config file is fine.
type Config struct {
	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the result-cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "redis", "mongo", or "none".
	Backend string `toml:"backend"`
	// Dir is the directory for the file backend.
	// Defaults to <user cache dir>/permkit.
	Dir string `toml:"dir"`
	// TTLDays is the entry lifetime in days; 0 keeps entries forever.
	TTLDays int `toml:"ttl_days"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongodb cache backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// defaultConfigPath returns ~/.config/permkit/permkit.toml (per the user
// config dir convention of the platform).
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "permkit", "permkit.toml"), nil
}

// cacheDir returns the default directory for the file cache backend.
func cacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "permkit"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields the zero config, not an error; a
// present but malformed file is an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return &Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// ttl converts the configured entry lifetime to a duration.
func (c *CacheConfig) ttl() time.Duration {
	return time.Duration(c.TTLDays) * 24 * time.Hour
}

// openCache builds the configured cache backend. The caller owns Close.
func (c *CacheConfig) openCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case "", "file":
		dir := c.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	case "mongo":
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis, mongo, or none)", c.Backend)
	}
}
