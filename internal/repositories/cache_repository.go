package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface — key-value хранилище для сессионных данных:
// whitelist refresh-токенов и счетчики неудачных входов.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}
