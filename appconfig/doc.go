// Package appconfig builds the process-wide AppConfig once at startup.
//
// The configuration merges compiled defaults with the environment:
//
//   - CACHE_URL (required) is the connection string of the cache backend,
//     any URL accepted by redis.ParseURL (redis://, rediss://, unix://).
//   - REDIS_URL (optional) is the connection string used by the sidekiq job
//     queue adapter. It defaults to redis://localhost:6379/0.
//
// Log level, log tags, cache namespace and queue adapter are fixed in code
// and can only be changed by building a Loader with WithDefaults.
//
// Loading never touches the network. A missing or malformed setting yields a
// *ConfigurationError, which the entry point must treat as fatal:
//
//	cfg, err := appconfig.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The returned *AppConfig is read-only and meant to be passed explicitly to
// every component that needs it.
package appconfig
