package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client    *redis.Client
	namespace string
}

func newRedisStore(backend appconfig.RedisCache) (*redisStore, error) {
	options, err := redis.ParseURL(backend.URL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse cache URL: %w", err)
	}
	return &redisStore{
		client:    redis.NewClient(options),
		namespace: backend.Namespace,
	}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.wrap("get", key, err)
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.Key(key), value, ttl).Err(); err != nil {
		return s.wrap("set", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.Key(key)).Err(); err != nil {
		return s.wrap("delete", key, err)
	}
	return nil
}

func (s *redisStore) Key(key string) string {
	return namespacedKey(s.namespace, key)
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

func (s *redisStore) wrap(op, key string, err error) error {
	if errors.Is(err, redis.ErrClosed) {
		err = ErrClosed
	}
	return fmt.Errorf("cache %s %q: %w", op, s.Key(key), err)
}
