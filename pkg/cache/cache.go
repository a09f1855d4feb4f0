// Package cache provides a persistent result cache for expensive group
// computations.
//
// Deriving a stabilizer chain or a full element listing is cheap for small
// groups but grows factorially with the degree. The CLI memoizes finished
// results (order, base, element counts) across invocations, keyed by a hash
// of the generator list, so repeated queries on the same group are free.
//
// Backends:
//   - [FileCache]: per-user directory cache for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: document-store flavor of the same
//   - [NullCache]: disables caching
//
// All backends store opaque bytes; callers serialize their own results.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/permkit/permkit/pkg/perm"
)

// ErrCacheMiss is returned by helpers that treat a missing entry as an
// error; the Cache interface itself reports misses via its bool result.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque byte values under string keys with optional
// expiration. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// GroupKey derives a cache key for a property of the group generated by
// gens. The key hashes the canonical cycle notation of every generator, so
// groups given by equal generator lists share entries regardless of how the
// permutations were constructed, while different generator orderings (which
// can change derived data such as words) do not collide.
func GroupKey(gens []perm.Perm, property string) string {
	var b strings.Builder
	for _, g := range gens {
		b.WriteString(g.String())
		b.WriteByte('\n')
	}
	return fmt.Sprintf("group:%s:%s", property, Hash([]byte(b.String())))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// keyType extracts the category prefix of a key ("group" for keys built by
// [GroupKey]) for observability hooks.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
