package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL is used when NewCached gets a non-positive ttl.
const DefaultCacheTTL = 24 * time.Hour

// Cached is a read-through redis cache in front of another Source.
// Redis failures are logged and bypassed; the wrapped source stays authoritative.
type Cached struct {
	next   Source
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewCached wraps next with a redis cache. Keys are namespaced with prefix.
func NewCached(next Source, rdb redis.Cmdable, prefix string, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if prefix == "" {
		prefix = "buildcraft"
	}
	return &Cached{next: next, rdb: rdb, ttl: ttl, prefix: prefix}
}

func (c *Cached) specKey(id int) string {
	return fmt.Sprintf("%s:spec:%d", c.prefix, id)
}

func (c *Cached) paletteKey(profession string) string {
	return fmt.Sprintf("%s:palette:%s", c.prefix, strings.ToLower(profession))
}

// Specialization implements Source.
func (c *Cached) Specialization(ctx context.Context, id int) (Specialization, error) {
	var spec Specialization
	if c.get(ctx, c.specKey(id), &spec) {
		return spec, nil
	}

	spec, err := c.next.Specialization(ctx, id)
	if err != nil {
		return Specialization{}, err
	}
	c.set(ctx, c.specKey(id), spec)
	return spec, nil
}

// ProfessionPalette implements Source.
func (c *Cached) ProfessionPalette(ctx context.Context, profession string) (map[int]int, error) {
	var palette map[int]int
	if c.get(ctx, c.paletteKey(profession), &palette) {
		return palette, nil
	}

	palette, err := c.next.ProfessionPalette(ctx, profession)
	if err != nil {
		return nil, err
	}
	c.set(ctx, c.paletteKey(profession), palette)
	return palette, nil
}

// Invalidate drops cached entries for the given specialization ids and professions.
func (c *Cached) Invalidate(ctx context.Context, specIDs []int, professions []string) error {
	keys := make([]string, 0, len(specIDs)+len(professions))
	for _, id := range specIDs {
		keys = append(keys, c.specKey(id))
	}
	for _, p := range professions {
		keys = append(keys, c.paletteKey(p))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidating %d cache keys: %w", len(keys), err)
	}
	return nil
}

func (c *Cached) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("reference cache read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("reference cache entry corrupt", "key", key, "err", err)
		return false
	}
	return true
}

func (c *Cached) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("encoding reference cache entry", "key", key, "err", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("reference cache write failed", "key", key, "err", err)
	}
}
