package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKeyValueRepository stores keys in Redis under a prefix
type RedisKeyValueRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisKeyValueRepository connects to Redis and checks the connection
func NewRedisKeyValueRepository(addr, password string, db int, prefix string) (*RedisKeyValueRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisKeyValueRepository{client: client, prefix: prefix}, nil
}

// Ensure RedisKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*RedisKeyValueRepository)(nil)

// Get returns the value stored under key
func (r *RedisKeyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

// Set stores value under key without expiration
func (r *RedisKeyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *RedisKeyValueRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisKeyValueRepository) Close() error {
	return r.client.Close()
}
