package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss - ключа нет или его срок истёк.
var ErrCacheMiss = errors.New("cache miss")

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// Del возвращает количество реально удалённых ключей.
	Del(ctx context.Context, keys ...string) (int64, error)
	// SetNX записывает значение, только если ключа ещё нет.
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}
