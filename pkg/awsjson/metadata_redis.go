package awsjson

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/codedeploy-go/pkg/redis"
)

// MetadataCache is the subset of *redis.Client used by RedisMetadataStore.
type MetadataCache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	MetadataKey(invocationID string) string
}

var _ MetadataCache = (*redis.Client)(nil)

// RedisMetadataStore shares response metadata between processes.
type RedisMetadataStore struct {
	cache MetadataCache
	ttl   time.Duration
}

// NewRedisMetadataStore stores entries with the given expiry.
func NewRedisMetadataStore(cache MetadataCache, ttl time.Duration) *RedisMetadataStore {
	return &RedisMetadataStore{cache: cache, ttl: ttl}
}

func (s *RedisMetadataStore) Put(ctx context.Context, meta ResponseMetadata) error {
	payload, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode response metadata: %w", err)
	}
	return s.cache.Set(ctx, s.cache.MetadataKey(meta.InvocationID), string(payload), s.ttl)
}

func (s *RedisMetadataStore) Get(ctx context.Context, invocationID string) (ResponseMetadata, bool, error) {
	raw, err := s.cache.Get(ctx, s.cache.MetadataKey(invocationID))
	if err != nil {
		if redis.IsNotFound(err) {
			return ResponseMetadata{}, false, nil
		}
		return ResponseMetadata{}, false, err
	}
	var meta ResponseMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return ResponseMetadata{}, false, fmt.Errorf("decode response metadata: %w", err)
	}
	return meta, true, nil
}
