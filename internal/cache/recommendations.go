package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andresuchdata/smart-reorder/internal/config"
	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/redis/go-redis/v9"
)

const recommendationsKey = "reorder:recommendations"

// RecommendationsCache stores the current recommendation list between
// mutations of the product collection. Disabled deployments get a
// noop implementation so callers never branch.
type RecommendationsCache interface {
	Get(ctx context.Context) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, recommendations []domain.Recommendation) error
	Invalidate(ctx context.Context) error
}

type redisRecommendationsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRecommendationsCache struct{}

// NewRecommendationsCache builds a redis-backed cache when enabled in
// config, otherwise a noop.
func NewRecommendationsCache(cfg config.CacheConfig) (RecommendationsCache, error) {
	if !cfg.Enabled {
		return &noopRecommendationsCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRecommendationsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// NewNoopRecommendationsCache returns the always-miss implementation.
func NewNoopRecommendationsCache() RecommendationsCache {
	return &noopRecommendationsCache{}
}

func (c *redisRecommendationsCache) Get(ctx context.Context) ([]domain.Recommendation, bool, error) {
	payload, err := c.client.Get(ctx, recommendationsKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var recommendations []domain.Recommendation
	if err := json.Unmarshal(payload, &recommendations); err != nil {
		return nil, false, fmt.Errorf("decode recommendations cache: %w", err)
	}

	return recommendations, true, nil
}

func (c *redisRecommendationsCache) Set(ctx context.Context, recommendations []domain.Recommendation) error {
	payload, err := json.Marshal(recommendations)
	if err != nil {
		return fmt.Errorf("encode recommendations cache: %w", err)
	}

	if err := c.client.Set(ctx, recommendationsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisRecommendationsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, recommendationsKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopRecommendationsCache) Get(ctx context.Context) ([]domain.Recommendation, bool, error) {
	return nil, false, nil
}

func (n *noopRecommendationsCache) Set(ctx context.Context, recommendations []domain.Recommendation) error {
	return nil
}

func (n *noopRecommendationsCache) Invalidate(ctx context.Context) error {
	return nil
}
