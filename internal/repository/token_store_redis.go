package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) RefreshTokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Save(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKeyPrefix+jti, userID.String(), ttl).Err()
}

func (s *redisTokenStore) UserID(ctx context.Context, jti string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, refreshKeyPrefix+jti).Result()
	if err == redis.Nil {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, jti string) error {
	return s.client.Del(ctx, refreshKeyPrefix+jti).Err()
}
