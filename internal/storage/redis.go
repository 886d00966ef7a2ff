package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const historyKey = "tvm:history"

// RedisHistory is a HistoryStore backed by a capped redis list with a
// retention TTL, for deployments where history must survive restarts.
type RedisHistory struct {
	client     *redis.Client
	maxEntries int
	ttl        time.Duration
}

// NewRedisHistory creates a redis-backed history store at addr, capped at
// maxEntries with the given retention.
func NewRedisHistory(addr string, maxEntries int, ttl time.Duration) *RedisHistory {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &RedisHistory{client: rdb, maxEntries: maxEntries, ttl: ttl}
}

// Ping verifies connectivity to the redis server.
func (r *RedisHistory) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Save pushes the evaluation onto the history list and trims it to the cap.
func (r *RedisHistory) Save(ctx context.Context, ev Evaluation) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal evaluation: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, int64(r.maxEntries-1))
	if r.ttl > 0 {
		pipe.Expire(ctx, historyKey, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save evaluation: %w", err)
	}
	return nil
}

// Recent returns up to limit evaluations, newest first. Entries that fail
// to decode are skipped rather than failing the whole read.
func (r *RedisHistory) Recent(ctx context.Context, limit int) ([]Evaluation, error) {
	if limit <= 0 || limit > r.maxEntries {
		limit = r.maxEntries
	}

	raw, err := r.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	out := make([]Evaluation, 0, len(raw))
	for _, item := range raw {
		var ev Evaluation
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// Close closes the underlying redis client.
func (r *RedisHistory) Close() error {
	return r.client.Close()
}
