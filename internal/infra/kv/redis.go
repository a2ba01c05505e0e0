package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	repo "borteh/internal/repository"
)

// RedisKVRepository はKVストレージのRedis実装。
// REDIS_ADDR が設定されているときだけ使われる。
type RedisKVRepository struct {
	client *redis.Client
}

// DI
func NewRedisKVRepository(client *redis.Client) *RedisKVRepository {
	return &RedisKVRepository{client: client}
}

func (r *RedisKVRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, storageKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (r *RedisKVRepository) Set(ctx context.Context, key string, value string) error {
	//TTLなし（localStorage相当の恒久保存）
	if err := r.client.Set(ctx, storageKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func storageKey(key string) string {
	return fmt.Sprintf("storage:%s", key)
}
