package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/permkit/permkit/pkg/cache"
)

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "permkit.toml")
	content := `[cache]
backend = "redis"
ttl_days = 7

[cache.redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("backend = %q, want %q", cfg.Cache.Backend, "redis")
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("redis db = %d, want 2", cfg.Cache.Redis.DB)
	}
	if got, want := cfg.Cache.ttl(), 7*24*time.Hour; got != want {
		t.Errorf("ttl = %v, want %v", got, want)
	}
}

func TestOpenCacheBackends(t *testing.T) {
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		c, err := (&CacheConfig{Backend: "none"}).openCache(ctx)
		if err != nil {
			t.Fatalf("openCache: %v", err)
		}
		defer c.Close()
		if _, ok := c.(*cache.NullCache); !ok {
			t.Errorf("got %T, want *cache.NullCache", c)
		}
	})

	t.Run("file", func(t *testing.T) {
		cfg := &CacheConfig{Backend: "file", Dir: t.TempDir()}
		c, err := cfg.openCache(ctx)
		if err != nil {
			t.Fatalf("openCache: %v", err)
		}
		defer c.Close()

		if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, ok, err := c.Get(ctx, "k")
		if err != nil || !ok {
			t.Fatalf("Get: ok=%v err=%v", ok, err)
		}
		if string(data) != "v" {
			t.Errorf("data = %q, want %q", data, "v")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := (&CacheConfig{Backend: "etcd"}).openCache(ctx); err == nil {
			t.Fatal("expected error for unknown backend")
		}
	})
}
