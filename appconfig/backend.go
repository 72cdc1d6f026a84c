package appconfig

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
)

type (
	// CacheKind identifies a cache backend variant.
	CacheKind string

	// CacheBackend is one of RedisCache or MemoryCache.
	CacheBackend interface {
		Kind() CacheKind
		// Prefix is the namespace every key stored by the application starts with.
		Prefix() string
		isCacheBackend()
	}

	// RedisCache stores entries in an external Redis-compatible server.
	RedisCache struct {
		URL       string
		Namespace string
	}

	// MemoryCache keeps entries in the process. Only meant for tests and
	// single-process tools.
	MemoryCache struct {
		Namespace string
	}
)

const (
	CacheKindRedis  CacheKind = "redis"
	CacheKindMemory CacheKind = "memory"
)

func (RedisCache) Kind() CacheKind { return CacheKindRedis }
func (c RedisCache) Prefix() string { return c.Namespace }
func (RedisCache) isCacheBackend() {}
func (MemoryCache) Kind() CacheKind { return CacheKindMemory }
func (c MemoryCache) Prefix() string { return c.Namespace }
func (MemoryCache) isCacheBackend() {}

type (
	// QueueKind identifies a job queue adapter variant.
	QueueKind string

	// QueueAdapter is one of SidekiqQueue, InlineQueue or AsyncQueue.
	QueueAdapter interface {
		Kind() QueueKind
		isQueueAdapter()
	}

	// SidekiqQueue pushes jobs to Redis in the sidekiq wire format, for an
	// external worker fleet to execute.
	SidekiqQueue struct {
		RedisURL string
		// Queue is used for jobs enqueued without an explicit queue.
		Queue string
	}

	// InlineQueue runs every job synchronously inside Enqueue.
	InlineQueue struct{}

	// AsyncQueue runs jobs on an in-process worker pool.
	AsyncQueue struct {
		Workers  int
		Capacity int
	}
)

const (
	QueueKindSidekiq QueueKind = "sidekiq"
	QueueKindInline  QueueKind = "inline"
	QueueKindAsync   QueueKind = "async"
)

const (
	// DefaultQueue is the queue name sidekiq workers poll by default.
	DefaultQueue = "default"
	// DefaultRedisURL is where sidekiq connects when REDIS_URL is unset.
	DefaultRedisURL = "redis://localhost:6379/0"
)

func (SidekiqQueue) Kind() QueueKind { return QueueKindSidekiq }
func (SidekiqQueue) isQueueAdapter() {}
func (InlineQueue) Kind() QueueKind { return QueueKindInline }
func (InlineQueue) isQueueAdapter() {}
func (AsyncQueue) Kind() QueueKind { return QueueKindAsync }
func (AsyncQueue) isQueueAdapter() {}

// validateRedisURL checks that raw is a connection string go-redis accepts.
func validateRedisURL(setting, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ConfigurationError{Setting: setting, Reason: "is not set"}
	}
	if _, err := redis.ParseURL(raw); err != nil {
		return &ConfigurationError{Setting: setting, Reason: "is not a valid redis connection string", Err: err}
	}
	return nil
}

func validateCacheBackend(backend CacheBackend, urlSetting string) error {
	switch b := backend.(type) {
	case RedisCache:
		if err := validateRedisURL(urlSetting, b.URL); err != nil {
			return err
		}
		return validateNamespace(b.Namespace)
	case MemoryCache:
		return validateNamespace(b.Namespace)
	case nil:
		return &ConfigurationError{Setting: "cache backend", Reason: "is not set"}
	default:
		return &ConfigurationError{Setting: "cache backend", Reason: fmt.Sprintf("unsupported variant %T", backend)}
	}
}

func validateNamespace(namespace string) error {
	if strings.TrimSpace(namespace) == "" {
		return &ConfigurationError{Setting: "cache namespace", Reason: "must not be empty"}
	}
	return nil
}

func validateQueueAdapter(adapter QueueAdapter, urlSetting string) error {
	switch a := adapter.(type) {
	case SidekiqQueue:
		if err := validateRedisURL(urlSetting, a.RedisURL); err != nil {
			return err
		}
		if strings.TrimSpace(a.Queue) == "" {
			return &ConfigurationError{Setting: "sidekiq queue", Reason: "must not be empty"}
		}
		return nil
	case InlineQueue:
		return nil
	case AsyncQueue:
		if a.Workers < 1 {
			return &ConfigurationError{Setting: "async workers", Reason: fmt.Sprintf("must be at least 1, got %d", a.Workers)}
		}
		if a.Capacity < 0 {
			return &ConfigurationError{Setting: "async capacity", Reason: fmt.Sprintf("must not be negative, got %d", a.Capacity)}
		}
		return nil
	case nil:
		return &ConfigurationError{Setting: "queue adapter", Reason: "is not set"}
	default:
		return &ConfigurationError{Setting: "queue adapter", Reason: fmt.Sprintf("unsupported variant %T", adapter)}
	}
}

// redactURL hides the password part of a connection string.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
