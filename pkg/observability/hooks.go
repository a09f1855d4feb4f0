// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about stabilizer-chain construction and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This avoids import cycles (hooks are registered by main, not by libraries)
// and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetChainHooks(&myChainHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Chain().OnBuildStart(ctx, generators)
//	// ... build the chain ...
//	observability.Chain().OnBuildComplete(ctx, baseLength, order, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// ChainHooks receives events from stabilizer-chain construction.
type ChainHooks interface {
	// OnBuildStart records the start of a chain build for a generator set.
	OnBuildStart(ctx context.Context, generators int)

	// OnBuildComplete records a finished chain build. order is the group
	// order in decimal text, since orders routinely exceed int64.
	OnBuildComplete(ctx context.Context, baseLength int, order string, duration time.Duration)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopChainHooks is a no-op implementation of ChainHooks.
type NoopChainHooks struct{}

func (NoopChainHooks) OnBuildStart(context.Context, int)                           {}
func (NoopChainHooks) OnBuildComplete(context.Context, int, string, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	chainHooks ChainHooks = NoopChainHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetChainHooks registers custom chain hooks.
// This should be called once at application startup before any computations.
func SetChainHooks(h ChainHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		chainHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Chain returns the registered chain hooks.
func Chain() ChainHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return chainHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	chainHooks = NoopChainHooks{}
	cacheHooks = NoopCacheHooks{}
}
