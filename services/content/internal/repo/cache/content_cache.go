// Package cache keeps converted posts in Redis so repeated slug and id
// lookups skip the nested database queries.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"platina/pkg/logger"
	"platina/services/content/internal/entity"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 10 * time.Minute

// ErrMiss is returned for absent keys and by a cache without a client.
var ErrMiss = errors.New("cache miss")

// ContentCache is safe to use as a nil pointer; every call then misses.
type ContentCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewContentCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *ContentCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &ContentCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *ContentCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func Get[T any](c *ContentCache, ctx context.Context, key string) (*T, error) {
	if !c.enabled() {
		return nil, ErrMiss
	}

	value, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if value == "null" {
		return nil, ErrMiss
	}

	var result T
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *ContentCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if !c.enabled() {
		return nil
	}

	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, valueJSON, c.ttl).Err()
}

// SetPost caches a post and indexes its key under the post's author, so an
// author edit can drop every cached post that embeds the old profile.
func (c *ContentCache) SetPost(ctx context.Context, key string, post entity.Content) error {
	if !c.enabled() {
		return nil
	}

	valueJSON, err := json.Marshal(post)
	if err != nil {
		return err
	}

	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, valueJSON, c.ttl)
	if authorID := post.Base().AuthorID; authorID != nil && *authorID != "" {
		index := AuthorPostsKey(*authorID)
		pipe.SAdd(ctx, index, key)
		pipe.Expire(ctx, index, c.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// InvalidateAuthor drops every cached post indexed under authorID.
func (c *ContentCache) InvalidateAuthor(ctx context.Context, authorID string) {
	if !c.enabled() || authorID == "" {
		return
	}

	index := AuthorPostsKey(authorID)
	keys, err := c.rdb.SMembers(ctx, index).Result()
	if err != nil {
		c.logger.Warn("Failed to read cached posts of author %s: %v", authorID, err)
		return
	}
	keys = append(keys, index)
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cached posts of author %s: %v", authorID, err)
	}
}

// Invalidate drops the cached entries of one post. Empty values are skipped.
func (c *ContentCache) Invalidate(ctx context.Context, kind entity.PostType, id, slug string) {
	if !c.enabled() {
		return
	}

	keys := make([]string, 0, 2)
	if id != "" {
		keys = append(keys, IDKey(kind, id))
	}
	if slug != "" {
		keys = append(keys, SlugKey(kind, slug))
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate %s cache %v: %v", kind, keys, err)
	}
}
