// Package cache provides an optional Redis read-through cache for hot
// read paths (latest quotes, symbol listing). The store stays
// authoritative: a missing or failing cache only costs a backend query.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockpulse/internal/domain/models"
)

// ResultCache is the contract the service consumes. A nil ResultCache
// disables caching entirely.
type ResultCache interface {
	GetResult(ctx context.Context, key string) (*models.QueryResult, error)
	SetResult(ctx context.Context, key string, res *models.QueryResult, ttl time.Duration) error
	GetSymbols(ctx context.Context) ([]string, error)
	SetSymbols(ctx context.Context, symbols []string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

const symbolsKey = "symbols"

// LatestKey builds the cache key for a latest-data response.
func LatestKey(symbol string, limit int) string {
	return fmt.Sprintf("latest:%s:%d", symbol, limit)
}

// RedisCache implements ResultCache over a single Redis instance.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// GetResult returns the cached QueryResult for key, or (nil, nil) on a
// cache miss.
func (c *RedisCache) GetResult(ctx context.Context, key string) (*models.QueryResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	var res models.QueryResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}
	return &res, nil
}

// SetResult stores res under key with the given TTL.
func (c *RedisCache) SetResult(ctx context.Context, key string, res *models.QueryResult, ttl time.Duration) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

// GetSymbols returns the cached symbol listing, or (nil, nil) on a miss.
func (c *RedisCache) GetSymbols(ctx context.Context) ([]string, error) {
	data, err := c.client.Get(ctx, symbolsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get symbols from redis: %w", err)
	}
	var symbols []string
	if err := json.Unmarshal(data, &symbols); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached symbols: %w", err)
	}
	return symbols, nil
}

// SetSymbols stores the symbol listing with the given TTL.
func (c *RedisCache) SetSymbols(ctx context.Context, symbols []string, ttl time.Duration) error {
	data, err := json.Marshal(symbols)
	if err != nil {
		return fmt.Errorf("failed to marshal symbols: %w", err)
	}
	if err := c.client.Set(ctx, symbolsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set symbols in redis: %w", err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
