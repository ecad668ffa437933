package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"sabor-oriental/internal/domain"
	"sabor-oriental/internal/storage"
)

func newTestCache(t *testing.T) *storage.RedisCache {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, 10*time.Minute)
}

func TestRedisCache_MenuRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	_, ok := cache.GetMenu(ctx)
	assert.False(t, ok)

	menu := []domain.Dish{
		{ID: 1, Nome: "Guioza", Preco: 24.90, Category: "Entradas"},
		{ID: 2, Nome: "Yakissoba de Frango", Preco: 38.50, Category: "Yakissoba"},
	}
	assert.NoError(t, cache.SetMenu(ctx, menu))

	cached, ok := cache.GetMenu(ctx)
	assert.True(t, ok)
	assert.Equal(t, menu, cached)

	assert.NoError(t, cache.InvalidateMenu(ctx))
	_, ok = cache.GetMenu(ctx)
	assert.False(t, ok)
}

func TestRedisCache_RatingMarker(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	rated, err := cache.WasRated(ctx, 42)
	assert.NoError(t, err)
	assert.False(t, rated)

	assert.NoError(t, cache.MarkRated(ctx, 42))

	rated, err = cache.WasRated(ctx, 42)
	assert.NoError(t, err)
	assert.True(t, rated)

	assert.Equal(t, "avaliacao:42", cache.RatingMarkerKey(42))
}
