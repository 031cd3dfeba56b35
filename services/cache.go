package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-backend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	SummaryCachePrefix = "rating:summary:"
	DefaultCacheTTL    = 5 * time.Minute
)

// SummaryCache keeps rating summaries in Redis so product pages do not
// recompute the aggregate on every view. A nil cache disables caching.
type SummaryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SummaryCache{
		redis: client,
		ttl:   ttl,
	}
}

func (c *SummaryCache) Get(ctx context.Context, productID string) (*models.RatingSummary, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, SummaryCachePrefix+productID).Result()
	if err != nil {
		return nil, false
	}
	var summary models.RatingSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		zap.L().Warn("Failed to unmarshal cached rating summary", zap.Error(err))
		return nil, false
	}
	return &summary, true
}

// SetAsync caches a summary off the request path.
func (c *SummaryCache) SetAsync(productID string, summary models.RatingSummary) {
	if c == nil || c.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(summary)
		if err != nil {
			zap.L().Warn("Failed to marshal rating summary for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, SummaryCachePrefix+productID, data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache rating summary", zap.Error(err), zap.String("product_id", productID))
		}
	}()
}

// Invalidate drops the cached summary after a new rating lands.
func (c *SummaryCache) Invalidate(ctx context.Context, productID string) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, SummaryCachePrefix+productID).Err(); err != nil {
		zap.L().Warn("Failed to invalidate rating summary cache", zap.Error(err), zap.String("product_id", productID))
	}
}
