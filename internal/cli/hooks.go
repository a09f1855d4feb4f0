package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/permkit/permkit/pkg/observability"
)

// debugHooks forwards chain and cache events to the CLI logger at debug
// level, so --verbose shows what the library is doing under the hood.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnBuildStart(_ context.Context, generators int) {
	h.logger.Debug("building stabilizer chain", "generators", generators)
}

func (h debugHooks) OnBuildComplete(_ context.Context, baseLength int, order string, duration time.Duration) {
	h.logger.Debug("stabilizer chain ready",
		"base_length", baseLength,
		"order", order,
		"duration", duration.Round(time.Microsecond))
}

func (h debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// registerHooks installs the debug hooks on the observability registry.
func registerHooks(logger *log.Logger) {
	h := debugHooks{logger: logger}
	observability.SetChainHooks(h)
	observability.SetCacheHooks(h)
}
