package db

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/require"
)

func newMiniCache(t *testing.T) (*miniredis.Miniredis, *Cache) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	cache := NewCache("redis://" + mini.Addr() + "/0")
	t.Cleanup(func() { _ = cache.Close() })

	return mini, cache
}

func TestCacheConnectsLazily(t *testing.T) {
	_, cache := newMiniCache(t)
	ctx := context.Background()

	require.False(t, cache.Connected(ctx))

	require.NotNil(t, cache.Client(ctx))
	require.True(t, cache.Connected(ctx))
}

func TestCacheReusesLiveConnection(t *testing.T) {
	_, cache := newMiniCache(t)
	ctx := context.Background()

	first := cache.Client(ctx)
	second := cache.Client(ctx)

	require.NotNil(t, first)
	require.Same(t, first, second)
}

func TestCacheSetGetDelete(t *testing.T) {
	mini, cache := newMiniCache(t)
	ctx := context.Background()

	value, found, err := cache.Get(ctx, "webhookData")
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, value)

	require.NoError(t, cache.Set(ctx, "webhookData", `[{"eventType":"push"}]`))

	stored, err := mini.Get("webhookData")
	require.NoError(t, err)
	require.Equal(t, `[{"eventType":"push"}]`, stored)

	value, found, err = cache.Get(ctx, "webhookData")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `[{"eventType":"push"}]`, value)

	require.NoError(t, cache.Delete(ctx, "webhookData"))
	require.False(t, mini.Exists("webhookData"))
}

func TestCacheReconnectsAfterServerRestart(t *testing.T) {
	mini, cache := newMiniCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v1"))
	before := cache.Client(ctx)

	mini.Close()

	err := cache.Set(ctx, "k", "v2")
	require.ErrorIs(t, err, ErrUnavailable)
	require.False(t, cache.Connected(ctx))

	require.NoError(t, mini.Restart())

	require.NoError(t, cache.Set(ctx, "k", "v3"))
	after := cache.Client(ctx)
	require.NotSame(t, before, after)

	value, found, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v3", value)
}

func TestCacheUnavailableDegrades(t *testing.T) {
	cache := NewCache("redis://127.0.0.1:1/0")
	ctx := context.Background()

	require.Nil(t, cache.Client(ctx))

	_, found, err := cache.Get(ctx, "webhookData")
	require.False(t, found)
	require.ErrorIs(t, err, ErrUnavailable)

	var richErr *goerrors.Error
	require.True(t, errors.As(err, &richErr))
	require.Equal(t, goerrors.CategoryExternal, richErr.Category)

	require.ErrorIs(t, cache.Set(ctx, "webhookData", "[]"), ErrUnavailable)
	require.ErrorIs(t, cache.Delete(ctx, "webhookData"), ErrUnavailable)
}

func TestCacheInvalidURL(t *testing.T) {
	cache := NewCache("::not a url::")

	require.Nil(t, cache.Client(context.Background()))
}
