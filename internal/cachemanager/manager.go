// Package cachemanager memoizes dataset loads behind a small generic cache
// API backed by go-cache.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values with per-entry expiry.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
