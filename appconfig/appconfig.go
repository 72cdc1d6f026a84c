package appconfig

import (
	"slices"
	"strconv"
	"strings"
)

// AppConfig is the immutable configuration snapshot of the process.
//
// Fields are only reachable through accessors; slices are copied on the way
// out so no caller can alter what another one sees.
type AppConfig struct {
	logLevel LogLevel
	logTags  []LogTag
	cache    CacheBackend
	queue    QueueAdapter
}

// Attribute is one resolved setting, rendered for humans.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// New validates every part and assembles an AppConfig. It is the entry
// point for configurations built in code; Loader.Load reports URL errors
// under their environment variable names instead.
func New(logLevel LogLevel, logTags []LogTag, cache CacheBackend, queue QueueAdapter) (*AppConfig, error) {
	if err := validateCacheBackend(cache, "cache URL"); err != nil {
		return nil, err
	}
	if err := validateQueueAdapter(queue, "sidekiq redis URL"); err != nil {
		return nil, err
	}
	return assemble(logLevel, logTags, cache, queue)
}

// assemble expects cache and queue to be validated already.
func assemble(logLevel LogLevel, logTags []LogTag, cache CacheBackend, queue QueueAdapter) (*AppConfig, error) {
	if !logLevel.Valid() {
		return nil, &ConfigurationError{Setting: "log level", Reason: "is unknown: " + logLevel.String()}
	}
	if err := validateLogTags(logTags); err != nil {
		return nil, &ConfigurationError{Setting: "log tags", Reason: "are invalid", Err: err}
	}

	return &AppConfig{
		logLevel: logLevel,
		logTags:  slices.Clone(logTags),
		cache:    cache,
		queue:    queue,
	}, nil
}

func (c *AppConfig) LogLevel() LogLevel {
	return c.logLevel
}

// LogTags returns the tags in the order they prefix log lines.
func (c *AppConfig) LogTags() []LogTag {
	return slices.Clone(c.logTags)
}

func (c *AppConfig) Cache() CacheBackend {
	return c.cache
}

// CacheBackendURL is the connection string of the cache server, empty when
// the cache lives in the process.
func (c *AppConfig) CacheBackendURL() string {
	if redisCache, ok := c.cache.(RedisCache); ok {
		return redisCache.URL
	}
	return ""
}

func (c *AppConfig) CacheNamespace() string {
	return c.cache.Prefix()
}

func (c *AppConfig) QueueAdapter() QueueAdapter {
	return c.queue
}

// Attributes lists every setting in a stable order, credentials redacted.
func (c *AppConfig) Attributes() []Attribute {
	tags := make([]string, len(c.logTags))
	for i, tag := range c.logTags {
		tags[i] = string(tag)
	}

	attributes := []Attribute{
		{Name: "log_level", Value: c.logLevel.String()},
		{Name: "log_tags", Value: strings.Join(tags, ",")},
		{Name: "cache_backend", Value: string(c.cache.Kind())},
	}
	if url := c.CacheBackendURL(); url != "" {
		attributes = append(attributes, Attribute{Name: "cache_url", Value: redactURL(url)})
	}
	attributes = append(attributes,
		Attribute{Name: "cache_namespace", Value: c.CacheNamespace()},
		Attribute{Name: "queue_adapter", Value: string(c.queue.Kind())},
	)

	switch queue := c.queue.(type) {
	case SidekiqQueue:
		attributes = append(attributes,
			Attribute{Name: "sidekiq_redis_url", Value: redactURL(queue.RedisURL)},
			Attribute{Name: "sidekiq_queue", Value: queue.Queue},
		)
	case AsyncQueue:
		attributes = append(attributes,
			Attribute{Name: "async_workers", Value: strconv.Itoa(queue.Workers)},
			Attribute{Name: "async_capacity", Value: strconv.Itoa(queue.Capacity)},
		)
	}

	return attributes
}
