package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item"
)

// CachedItem is the read model stored in Redis. Payload is the owning service's
// JSON snapshot of the item; the cache never interprets it.
type CachedItem struct {
	ID        int64
	OwnerID   uuid.UUID
	Payload   json.RawMessage
	UpdatedAt time.Time
}

// ItemCache provides structured read/write operations for item cache entries.
// Keys are scoped by ownerID to prevent cross-account data leakage.
// Key format: "item:{ownerID}:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by owner + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, ownerID uuid.UUID, itemID int64) (*CachedItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(ownerID, itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}
	return decodeCachedItem(vals)
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.OwnerID, item.ID)
	pipe := c.client.Client().TxPipeline()
	pipe.HSet(ctx, key, encodeCachedItem(item))
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item.
func (c *ItemCache) Delete(ctx context.Context, ownerID uuid.UUID, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(ownerID, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{ownerID}:{itemID}"
func (c *ItemCache) key(ownerID uuid.UUID, itemID int64) string {
	return Key(itemCacheKeyPrefix, ownerID.String(), strconv.FormatInt(itemID, 10))
}

func encodeCachedItem(item *CachedItem) map[string]any {
	return map[string]any{
		"id":         strconv.FormatInt(item.ID, 10),
		"owner_id":   item.OwnerID.String(),
		"payload":    string(item.Payload),
		"updated_at": item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeCachedItem(vals map[string]string) (*CachedItem, error) {
	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	oid, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}
	payload := vals["payload"]
	if !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("cache parse payload: invalid json")
	}
	return &CachedItem{
		ID:        id,
		OwnerID:   oid,
		Payload:   json.RawMessage(payload),
		UpdatedAt: updatedAt,
	}, nil
}
