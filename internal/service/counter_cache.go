package service

import (
	"context"
	"errors"
	"time"

	"panganjawara/internal/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// CounterCache memisahkan layanan interaksi dari helper redis global
// sehingga alur like/share bisa diuji tanpa instans redis.
type CounterCache interface {
	// GetInt64 mengembalikan found=false pada cache miss.
	GetInt64(ctx context.Context, key string) (value int64, found bool, err error)
	Set(ctx context.Context, key string, value int64, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	MarkDirty(ctx context.Context, setKey, member string) error
	Publish(ctx context.Context, channel string, payload []byte) error
}

type redisCounterCache struct{}

func NewCounterCache() CounterCache {
	return &redisCounterCache{}
}

func (redisCounterCache) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	value, err := redis.GetInt64(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return value, true, nil
}

func (redisCounterCache) Set(ctx context.Context, key string, value int64, expiration time.Duration) error {
	return redis.SetWithExpiration(ctx, key, value, expiration)
}

func (redisCounterCache) Delete(ctx context.Context, key string) error {
	return redis.DeleteKey(ctx, key)
}

func (redisCounterCache) MarkDirty(ctx context.Context, setKey, member string) error {
	return redis.SAdd(ctx, setKey, member)
}

func (redisCounterCache) Publish(ctx context.Context, channel string, payload []byte) error {
	return redis.Publish(ctx, channel, payload)
}
