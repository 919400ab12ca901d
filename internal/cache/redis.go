package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jakesingi/ncaamb-four-factors/internal/boxscore"
)

const tableKeyPrefix = "boxscore:raw:"

// TableCache stores fetched game tables in Redis so repeated analysis runs
// don't re-scrape the source site. It is best effort: a cache failure only
// means a re-fetch.
type TableCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTableCache connects to Redis and verifies the connection.
func NewTableCache(redisURL string, ttl time.Duration) (*TableCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &TableCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Close closes the Redis connection.
func (c *TableCache) Close() error {
	return c.client.Close()
}

// GetTable returns the cached table for a game, or ok=false on a miss.
func (c *TableCache) GetTable(ctx context.Context, gameID string) (*boxscore.GameTable, bool) {
	raw, err := c.client.Get(ctx, tableKeyPrefix+gameID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[cache] Read failed for game %s: %v", gameID, err)
		}
		return nil, false
	}

	var table boxscore.GameTable
	if err := json.Unmarshal(raw, &table); err != nil {
		log.Printf("[cache] Discarding corrupt entry for game %s: %v", gameID, err)
		return nil, false
	}

	return &table, true
}

// PutTable stores a fetched table under its game ID.
func (c *TableCache) PutTable(ctx context.Context, table *boxscore.GameTable) {
	raw, err := json.Marshal(table)
	if err != nil {
		log.Printf("[cache] Encoding table for game %s failed: %v", table.GameID, err)
		return
	}

	if err := c.client.Set(ctx, tableKeyPrefix+table.GameID, raw, c.ttl).Err(); err != nil {
		log.Printf("[cache] Write failed for game %s: %v", table.GameID, err)
	}
}
