package cache

import (
	"context"
	"time"

	"sportsmatch-api/core/config"
	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	SetEventDetail(ctx context.Context, eventID string, payload []byte) error
	GetEventDetail(ctx context.Context, eventID string) ([]byte, error)
	InvalidateEventDetail(ctx context.Context, eventID string) error

	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:Init:Ping", err)
		return nil, err
	}

	logger.Info("Cache:Init", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) SetEventDetail(ctx context.Context, eventID string, payload []byte) error {
	return c.client.Set(ctx, constants.RedisKeyEventDetail+eventID, payload, constants.EventDetailCacheTTL).Err()
}

func (c *redisCache) GetEventDetail(ctx context.Context, eventID string) ([]byte, error) {
	payload, err := c.client.Get(ctx, constants.RedisKeyEventDetail+eventID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return payload, err
}

func (c *redisCache) InvalidateEventDetail(ctx context.Context, eventID string) error {
	return c.client.Del(ctx, constants.RedisKeyEventDetail+eventID).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
