package appconfig

import (
	"strings"

	"github.com/a-peyrard/appboot/config"
	"github.com/a-peyrard/appboot/option"
)

const (
	// EnvCacheURL holds the cache backend connection string.
	EnvCacheURL = "CACHE_URL"
	// EnvRedisURL holds the sidekiq connection string.
	EnvRedisURL = "REDIS_URL"

	// DefaultCacheNamespace prefixes every cache key of the application.
	DefaultCacheNamespace = "app::cache"
)

type (
	// Defaults are the settings compiled into the binary.
	Defaults struct {
		LogLevel       LogLevel
		LogTags        []LogTag
		Cache          CacheKind
		CacheNamespace string
		// Queue is the adapter template. A SidekiqQueue without RedisURL
		// gets it from the environment.
		Queue QueueAdapter
	}

	// Loader produces the AppConfig from the environment and its Defaults.
	Loader struct {
		defaults  Defaults
		envPrefix string
	}

	// environment is what the process environment may provide.
	environment struct {
		CacheURL string `mapstructure:"cache_url"`
		RedisURL string `mapstructure:"redis_url"`
	}
)

// CompiledDefaults returns the settings the application ships with.
func CompiledDefaults() Defaults {
	return Defaults{
		LogLevel:       LogLevelDebug,
		LogTags:        []LogTag{LogTagSubdomain, LogTagRequestID},
		Cache:          CacheKindRedis,
		CacheNamespace: DefaultCacheNamespace,
		Queue:          SidekiqQueue{Queue: DefaultQueue},
	}
}

// WithDefaults replaces the compiled defaults.
func WithDefaults(defaults Defaults) option.Option[Loader] {
	return func(l *Loader) {
		l.defaults = defaults
	}
}

// WithEnvPrefix makes the loader read PREFIX_CACHE_URL and PREFIX_REDIS_URL.
func WithEnvPrefix(prefix string) option.Option[Loader] {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

func NewLoader(opts ...option.Option[Loader]) *Loader {
	return option.Build(&Loader{defaults: CompiledDefaults()}, opts...)
}

// Load is NewLoader().Load().
func Load() (*AppConfig, error) {
	return NewLoader().Load()
}

// Load reads the environment and returns a fully resolved AppConfig, or a
// *ConfigurationError naming the first setting that is missing or invalid.
//
// It has no side effect, so calling it again with the same environment
// yields an equal AppConfig.
func (l *Loader) Load() (*AppConfig, error) {
	env, err := config.Load[environment](
		config.WithEnvPrefix(l.envPrefix),
		config.WithDefaultValue("redis_url", DefaultRedisURL),
	)
	if err != nil {
		return nil, &ConfigurationError{Setting: "environment", Reason: "cannot be read", Err: err}
	}

	cache, err := l.cacheBackend(env)
	if err != nil {
		return nil, err
	}
	if err := validateCacheBackend(cache, l.envName(EnvCacheURL)); err != nil {
		return nil, err
	}

	queue := l.queueAdapter(env)
	if err := validateQueueAdapter(queue, l.envName(EnvRedisURL)); err != nil {
		return nil, err
	}

	return assemble(l.defaults.LogLevel, l.defaults.LogTags, cache, queue)
}

func (l *Loader) cacheBackend(env *environment) (CacheBackend, error) {
	switch l.defaults.Cache {
	case CacheKindRedis:
		return RedisCache{URL: env.CacheURL, Namespace: l.defaults.CacheNamespace}, nil
	case CacheKindMemory:
		return MemoryCache{Namespace: l.defaults.CacheNamespace}, nil
	default:
		return nil, &ConfigurationError{Setting: "cache backend", Reason: "is unknown: " + string(l.defaults.Cache)}
	}
}

func (l *Loader) queueAdapter(env *environment) QueueAdapter {
	if sidekiq, ok := l.defaults.Queue.(SidekiqQueue); ok {
		if sidekiq.RedisURL == "" {
			sidekiq.RedisURL = env.RedisURL
		}
		return sidekiq
	}
	return l.defaults.Queue
}

func (l *Loader) envName(name string) string {
	if l.envPrefix == "" {
		return name
	}
	return strings.ToUpper(l.envPrefix) + "_" + name
}
