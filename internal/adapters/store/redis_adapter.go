package store

import (
	"context"
	"fmt"

	"github.com/kulinernusantara/backend/internal/domain/providers"
	redisclient "github.com/kulinernusantara/backend/internal/infrastructure/clients/redis"
	"github.com/redis/go-redis/v9"
)

// RedisAdapter implements the StoreProvider interface using Redis. Values are
// written without expiry: the store holds collections, not cache entries.
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter creates a new Redis store adapter
func NewRedisAdapter(client *redisclient.Client) providers.StoreProvider {
	return &RedisAdapter{
		client: client,
	}
}

// Get retrieves the value stored under key
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, providers.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from store: %w", err)
	}
	return result, nil
}

// Set replaces the value stored under key
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte) error {
	if err := a.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in store: %w", err)
	}
	return nil
}

// Delete removes the value stored under key
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from store: %w", err)
	}
	return nil
}

// Exists checks if a key holds a value
func (a *RedisAdapter) Exists(ctx context.Context, key string) (bool, error) {
	result, err := a.client.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check existence in store: %w", err)
	}
	return result > 0, nil
}
