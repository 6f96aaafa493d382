package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sectionKey string

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[sectionKey, []string]("test", time.Minute, time.Minute)

	_, ok := c.Get(ctx, "products")
	require.False(t, ok)

	c.Set(ctx, "products", []string{"#1000", "#1001"}, 0)

	got, ok := c.Get(ctx, "products")
	require.True(t, ok)
	require.Equal(t, []string{"#1000", "#1001"}, got)
	require.Equal(t, 1, c.Len())
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[sectionKey, int]("test", time.Minute, time.Minute)

	c.Set(ctx, "reports", 5000, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx, "reports")
	require.False(t, ok, "entry should have expired")
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[sectionKey, int]("test", time.Minute, time.Minute)

	c.Set(ctx, "customers", 8000, 40*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	v, ok := c.GetWithRefresh(ctx, "customers", time.Minute)
	require.True(t, ok)
	require.Equal(t, 8000, v)

	time.Sleep(25 * time.Millisecond)
	_, ok = c.Get(ctx, "customers")
	require.True(t, ok, "refresh should have extended the ttl")

	_, ok = c.GetWithRefresh(ctx, "missing", time.Minute)
	require.False(t, ok)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[sectionKey, int]("test", 0, 0)

	c.Set(ctx, "a", 1, 0)
	c.Set(ctx, "b", 2, 0)
	c.Set(ctx, "c", 3, 0)

	require.NoError(t, c.Delete(ctx, "a", "missing"))
	_, ok := c.Get(ctx, "a")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())

	require.NoError(t, c.Flush(ctx))
	require.Equal(t, 0, c.Len())
}
