package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCacheManager[K comparable, V any] struct {
	mock.Mock
}

func (m *mockCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	args := m.Called(ctx, key)
	v, _ := args.Get(0).(V)
	return v, args.Bool(1)
}

func (m *mockCacheManager[K, V]) GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	args := m.Called(ctx, key, ttl)
	v, _ := args.Get(0).(V)
	return v, args.Bool(1)
}

func (m *mockCacheManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager[K, V]) Delete(ctx context.Context, keys ...K) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCacheManager[K, V]) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type loadInput struct {
	Rows int
}

func countingLoader(calls *int) func(context.Context, loadInput) ([]int, error) {
	return func(_ context.Context, in loadInput) ([]int, error) {
		*calls++
		return make([]int, in.Rows), nil
	}
}

func TestReadThroughCache_Disabled(t *testing.T) {
	m := &mockCacheManager[string, []int]{}
	calls := 0
	r := NewReadThroughCache[string, []int, loadInput](m, countingLoader(&calls), true)

	got, err := r.Get(context.Background(), "settings", loadInput{Rows: 3}, time.Minute)
	require.NoError(t, err)
	require.Len(t, got, 3)

	_, err = r.GetWithRefresh(context.Background(), "settings", loadInput{Rows: 3}, time.Minute)
	require.NoError(t, err)

	require.Equal(t, 2, calls)
	m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_MissLoadsAndStores(t *testing.T) {
	m := &mockCacheManager[string, []int]{}
	m.On("Get", mock.Anything, "products").Return(nil, false).Once()
	m.On("Set", mock.Anything, "products", make([]int, 6), time.Minute).Once()
	calls := 0
	r := NewReadThroughCache[string, []int, loadInput](m, countingLoader(&calls), false)

	got, err := r.Get(context.Background(), "products", loadInput{Rows: 6}, time.Minute)

	require.NoError(t, err)
	require.Len(t, got, 6)
	require.Equal(t, 1, calls)
	m.AssertExpectations(t)
}

func TestReadThroughCache_HitSkipsLoader(t *testing.T) {
	m := &mockCacheManager[string, []int]{}
	m.On("GetWithRefresh", mock.Anything, "reports", time.Minute).Return([]int{7}, true).Once()
	calls := 0
	r := NewReadThroughCache[string, []int, loadInput](m, countingLoader(&calls), false)

	got, err := r.GetWithRefresh(context.Background(), "reports", loadInput{Rows: 99}, time.Minute)

	require.NoError(t, err)
	require.Equal(t, []int{7}, got)
	require.Equal(t, 0, calls)
	m.AssertExpectations(t)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	m := &mockCacheManager[string, []int]{}
	m.On("Get", mock.Anything, "customers").Return(nil, false)
	boom := errors.New("boom")
	r := NewReadThroughCache[string, []int, loadInput](m,
		func(context.Context, loadInput) ([]int, error) { return nil, boom },
		false,
	)

	_, err := r.Get(context.Background(), "customers", loadInput{}, time.Minute)

	require.ErrorIs(t, err, boom)
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_WithInMemoryManager(t *testing.T) {
	ctx := context.Background()
	calls := 0
	r := NewReadThroughCache[sectionKey, []int, loadInput](
		NewInMemoryCacheManager[sectionKey, []int]("sections", time.Minute, time.Minute),
		countingLoader(&calls),
		false,
	)

	for i := 0; i < 3; i++ {
		got, err := r.Get(ctx, "dashboard", loadInput{Rows: 10}, 0)
		require.NoError(t, err)
		require.Len(t, got, 10)
	}
	require.Equal(t, 1, calls, "loader runs once per key")

	require.NoError(t, r.Invalidate(ctx))
	_, err := r.Get(ctx, "dashboard", loadInput{Rows: 10}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "invalidate forces a reload")
}
