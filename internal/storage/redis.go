package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"sabor-oriental/internal/domain"
)

const menuCacheKey = "cardapio"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// GetMenu returns the cached dish collection; a miss or a stale payload
// reports ok=false so the caller falls through to Postgres.
func (c *RedisCache) GetMenu(ctx context.Context) ([]domain.Dish, bool) {
	payload, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(payload, &dishes); err != nil {
		return nil, false
	}
	return dishes, true
}

func (c *RedisCache) SetMenu(ctx context.Context, dishes []domain.Dish) error {
	payload, _ := json.Marshal(dishes)
	return c.Client.Set(ctx, menuCacheKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateMenu(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}

func (c *RedisCache) RatingMarkerKey(orderID int) string {
	return "avaliacao:" + strconv.Itoa(orderID)
}

func (c *RedisCache) MarkRated(ctx context.Context, orderID int) error {
	return c.Client.Set(ctx, c.RatingMarkerKey(orderID), "1", 24*7*time.Hour).Err()
}

func (c *RedisCache) WasRated(ctx context.Context, orderID int) (bool, error) {
	res, err := c.Client.Exists(ctx, c.RatingMarkerKey(orderID)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
