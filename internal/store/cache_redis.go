package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisClient is the subset of *redis.Client used by the session cache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// redisNewClient builds the client; tests replace it.
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// RedisSessionCache stores "session:<token>" → user id with the remaining
// lifetime of the token as TTL.
type RedisSessionCache struct {
	client redisClient
	logger *logger.Logger
}

// NewRedisSessionCache connects to redis and verifies the connection with a
// PING.
func NewRedisSessionCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisSessionCache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSessionCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewRedisSessionCache").Msg("connected to redis successfully")

	return &RedisSessionCache{client: client, logger: log}, nil
}

func (c *RedisSessionCache) SaveSession(ctx context.Context, token, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionCache.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *RedisSessionCache) GetSession(ctx context.Context, token string) (string, error) {
	userID, err := c.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionCache.GetSession").Msg("error reading session")
		return "", fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return userID, nil
}

func (c *RedisSessionCache) DeleteSession(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionCache.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *RedisSessionCache) Close() error {
	return c.client.Close()
}
