package prefs

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding every preference field.
const DefaultRedisKey = "snapmap:preferences"

// RedisStore keeps keys as fields of one Redis hash.
type RedisStore struct {
	client *redis.Client
	hash   string
}

// NewRedisStore wraps an open client. An empty hash uses DefaultRedisKey.
func NewRedisStore(client *redis.Client, hash string) *RedisStore {
	if hash == "" {
		hash = DefaultRedisKey
	}
	return &RedisStore{client: client, hash: hash}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.HSet(ctx, s.hash, key, value).Err()
}

// SetMany implements BatchStore in one HSET round trip.
func (s *RedisStore) SetMany(ctx context.Context, values map[string]string) error {
	fields := make(map[string]any, len(values))
	for k, v := range values {
		fields[k] = v
	}
	return s.client.HSet(ctx, s.hash, fields).Err()
}
