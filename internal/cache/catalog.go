package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	KeyBoats     = "catalog:boats"
	KeyJets      = "catalog:jets"
	KeyChalets   = "catalog:chalets"
	KeyShopItems = "catalog:shop_items"
)

// Catalog is a read-through JSON cache for the public listing endpoints.
// Every method degrades to a no-op on redis errors; the database remains
// the source of truth.
type Catalog struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewCatalog(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *Catalog {
	return &Catalog{rdb: rdb, ttl: ttl, log: log}
}

func (c *Catalog) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache decode failed")
		return false
	}
	return true
}

func (c *Catalog) Set(ctx context.Context, key string, val any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("catalog cache set failed")
	}
}

func (c *Catalog) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidate failed")
	}
}
