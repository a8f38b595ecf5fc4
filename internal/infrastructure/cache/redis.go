package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/infrastructure/metrics"
)

const cacheVersion = "v1"

// NewRedisClient connects to one or more comma separated Redis URLs or
// host:port addresses.
func NewRedisClient(ctx context.Context, redisURL string) (redis.UniversalClient, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL must be provided")
	}

	opts, err := buildUniversalOptions(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if len(opts.Addrs) > 1 {
		opts.DB = 0
	}

	client := redis.NewUniversalClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func buildUniversalOptions(raw string) (*redis.UniversalOptions, error) {
	opts := &redis.UniversalOptions{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, "://") {
			opts.Addrs = append(opts.Addrs, part)
			continue
		}

		parsed, err := redis.ParseURL(part)
		if err != nil {
			return nil, err
		}
		opts.Addrs = append(opts.Addrs, parsed.Addr)
		if opts.Username == "" {
			opts.Username = parsed.Username
		}
		if opts.Password == "" {
			opts.Password = parsed.Password
		}
		if opts.DB == 0 {
			opts.DB = parsed.DB
		}
		if opts.TLSConfig == nil {
			opts.TLSConfig = parsed.TLSConfig
		}
	}

	if len(opts.Addrs) == 0 {
		return nil, fmt.Errorf("no redis addresses provided")
	}
	return opts, nil
}

// RedisDegreeCache shares catalog reads between replicas. Redis faults are
// logged and treated as misses.
type RedisDegreeCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
	log    zerolog.Logger
}

// NewRedisDegreeCache wraps client.
func NewRedisDegreeCache(client redis.UniversalClient, ttl time.Duration, log zerolog.Logger) *RedisDegreeCache {
	return &RedisDegreeCache{
		client: client,
		ttl:    ttl,
		prefix: "matsols:" + cacheVersion + ":",
		log:    log.With().Str("component", "degree-cache").Logger(),
	}
}

// GetList implements degree.Cache.
func (c *RedisDegreeCache) GetList(ctx context.Context) ([]*degree.Degree, bool) {
	var degrees []*degree.Degree
	if !c.getJSON(ctx, listKey, &degrees) {
		return nil, false
	}
	return degrees, true
}

// SetList implements degree.Cache.
func (c *RedisDegreeCache) SetList(ctx context.Context, degrees []*degree.Degree) {
	c.setJSON(ctx, listKey, degrees)
}

// GetBySlug implements degree.Cache.
func (c *RedisDegreeCache) GetBySlug(ctx context.Context, slug string) (*degree.Degree, bool) {
	var d degree.Degree
	if !c.getJSON(ctx, slugKey(slug), &d) {
		return nil, false
	}
	return &d, true
}

// SetBySlug implements degree.Cache.
func (c *RedisDegreeCache) SetBySlug(ctx context.Context, d *degree.Degree) {
	if d == nil {
		return
	}
	c.setJSON(ctx, slugKey(d.Slug), d)
}

// Invalidate implements degree.Cache.
func (c *RedisDegreeCache) Invalidate(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"degrees:*", 500).Result()
		if err != nil {
			c.log.Error().Err(err).Msg("scan degree cache keys")
			return
		}
		if len(keys) > 0 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				c.log.Error().Err(err).Msg("unlink degree cache keys")
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func (c *RedisDegreeCache) getJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("degree cache read failed")
		}
		metrics.RecordCacheLookup("redis", false)
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("degree cache entry unreadable")
		metrics.RecordCacheLookup("redis", false)
		return false
	}
	metrics.RecordCacheLookup("redis", true)
	return true
}

func (c *RedisDegreeCache) setJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("encode degree cache entry")
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("degree cache write failed")
	}
}
