// Package cache opens the namespaced key/value store described by the
// configured cache backend.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-peyrard/appboot/appconfig"
)

// ErrClosed is returned by a Store used after Close.
var ErrClosed = errors.New("cache store is closed")

// Store is the cache as seen by the application. Keys are given without
// namespace; the store adds it.
type Store interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Key returns the namespaced form of key, as stored in the backend.
	Key(key string) string
	Close() error
}

// Open builds the store for backend. It never contacts the backend: a
// remote cache that is down only surfaces on first use.
func Open(backend appconfig.CacheBackend) (Store, error) {
	switch b := backend.(type) {
	case appconfig.RedisCache:
		return newRedisStore(b)
	case appconfig.MemoryCache:
		return newMemoryStore(b.Namespace, time.Now), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %T", backend)
	}
}

func namespacedKey(namespace, key string) string {
	return namespace + ":" + key
}
