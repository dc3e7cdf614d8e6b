package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
)

type redisToken struct {
	client *redis.Client
	key    string
}

func NewRedisTokenRepository(client *redis.Client, key string) TokenRepository {
	return &redisToken{
		client: client,
		key:    key,
	}
}

func (that *redisToken) Get(ctx context.Context) (string, error) {
	token, err := that.client.Get(ctx, that.key).Result()

	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrTokenNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get session token: %w", err)
	}

	return token, nil
}

func (that *redisToken) Save(ctx context.Context, token string) error {
	if err := that.client.Set(ctx, that.key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session token: %w", err)
	}

	return nil
}
