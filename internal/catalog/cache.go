package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	snapshotVersionKey = "catalogue:snapshot:version"
	snapshotKeyPrefix  = "catalogue:snapshot:"
)

// SnapshotCache keeps the most recent product listing in Redis so repeat
// reads do not hit the document store. A version counter invalidates the
// cached listing after admin writes; stale entries age out via TTL.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache instantiates the cache helper. A nil client disables
// caching entirely.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot for the current version, or false when
// the cache is cold, disabled or unreadable.
func (c *SnapshotCache) Get(ctx context.Context) ([]Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	key, err := c.key(ctx)
	if err != nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var products []Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores a snapshot under the current version.
func (c *SnapshotCache) Set(ctx context.Context, products []Product) error {
	if c == nil || c.client == nil {
		return nil
	}
	key, err := c.key(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Bump invalidates the cached snapshot by incrementing the version, so
// the next read refetches from the store.
func (c *SnapshotCache) Bump(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, snapshotVersionKey).Err()
}

func (c *SnapshotCache) key(ctx context.Context) (string, error) {
	ver, err := c.version(ctx)
	if err != nil {
		return "", err
	}
	return snapshotKeyPrefix + strconv.FormatInt(ver, 10), nil
}

func (c *SnapshotCache) version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, snapshotVersionKey).Int64()
	if err == redis.Nil {
		if err := c.client.Set(ctx, snapshotVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}
