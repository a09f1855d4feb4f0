package observability

import (
	"context"
	"testing"
	"time"
)

type recordingChainHooks struct {
	starts, completes int
}

func (h *recordingChainHooks) OnBuildStart(ctx context.Context, generators int) {
	h.starts++
}

func (h *recordingChainHooks) OnBuildComplete(ctx context.Context, baseLength int, order string, duration time.Duration) {
	h.completes++
}

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(ctx context.Context, keyType string)  { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(ctx context.Context, keyType string) { h.misses++ }

func (h *recordingCacheHooks) OnCacheSet(ctx context.Context, keyType string, n int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Must not panic.
	Chain().OnBuildStart(ctx, 2)
	Chain().OnBuildComplete(ctx, 2, "6", time.Millisecond)
	Cache().OnCacheHit(ctx, "group")
	Cache().OnCacheMiss(ctx, "group")
	Cache().OnCacheSet(ctx, "group", 128)
}

func TestSetChainHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingChainHooks{}
	SetChainHooks(h)

	ctx := context.Background()
	Chain().OnBuildStart(ctx, 3)
	Chain().OnBuildComplete(ctx, 2, "24", time.Millisecond)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1 and 1", h.starts, h.completes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "group")
	Cache().OnCacheSet(ctx, "group", 64)
	Cache().OnCacheHit(ctx, "group")

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1 each", h.hits, h.misses, h.sets)
	}
}

func TestSetNilKeepsExisting(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingChainHooks{}
	SetChainHooks(h)
	SetChainHooks(nil)

	Chain().OnBuildStart(context.Background(), 1)
	if h.starts != 1 {
		t.Errorf("starts = %d, want 1 (nil registration must be ignored)", h.starts)
	}
}
