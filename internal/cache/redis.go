package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/limbo/palseverance/pkg/cleanup"
)

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the Redis server behind redisURL
// (redis://host:port/db) and registers the connection for shutdown.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.New("parsing redis url error: " + err.Error())
	}
	client := redis.NewClient(opt)
	if _, err = client.Ping(context.Background()).Result(); err != nil {
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisCache{client: client}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.New("redis get error: " + err.Error())
	}
	if err = sonic.Unmarshal([]byte(value), dest); err != nil {
		return errors.New("unmarshalling cached value error: " + err.Error())
	}
	return nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	marshaled, err := sonic.Marshal(value)
	if err != nil {
		return errors.New("marshalling value for cache error: " + err.Error())
	}
	if err = r.client.Set(ctx, key, marshaled, ttl).Err(); err != nil {
		return errors.New("redis set error: " + err.Error())
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
