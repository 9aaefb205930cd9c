package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"

	"wordlife_backend/internals/features/wordlife/model"
)

// TTL of a cached latest-record entry. Expired entries are treated as absent.
const RecordTTL = 24 * time.Hour

// RecordCache memoizes the latest authoritative record per logical identity.
// Put must never let an older write mask a newer one: an entry is only
// replaced when the incoming record's timestamp is strictly newer.
type RecordCache interface {
	Get(ctx context.Context, key string) (*model.ActivityRecordModel, bool)
	Put(ctx context.Context, rec *model.ActivityRecordModel)
	Forget(ctx context.Context, key string)
}

/* ===============================
   Redis implementation
=================================*/

type redisRecordCache struct {
	client *redis.Client
}

func NewRedisRecordCache(addr, password string) RecordCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &redisRecordCache{client: client}
}

func cacheKey(key string) string {
	return "wordlife:record:" + key
}

func (c *redisRecordCache) Get(ctx context.Context, key string) (*model.ActivityRecordModel, bool) {
	raw, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("record cache get err: %v", err)
		}
		return nil, false
	}
	var rec model.ActivityRecordModel
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		log.Printf("record cache decode err: %v", err)
		return nil, false
	}
	return &rec, true
}

func (c *redisRecordCache) Put(ctx context.Context, rec *model.ActivityRecordModel) {
	if rec == nil {
		return
	}
	key := rec.IdentityKey()
	if cur, ok := c.Get(ctx, key); ok && !rec.RecordTimestamp.After(cur.RecordTimestamp) {
		return
	}
	raw, err := sonic.Marshal(rec)
	if err != nil {
		log.Printf("record cache encode err: %v", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(key), raw, RecordTTL).Err(); err != nil {
		log.Printf("record cache set err: %v", err)
	}
}

func (c *redisRecordCache) Forget(ctx context.Context, key string) {
	if err := c.client.Del(ctx, cacheKey(key)).Err(); err != nil {
		log.Printf("record cache del err: %v", err)
	}
}

/* ===============================
   In-memory implementation
   (no REDIS_ADDR, and the test double)
=================================*/

type memoryEntry struct {
	rec      model.ActivityRecordModel
	cachedAt time.Time
}

type MemoryRecordCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	Now     func() time.Time
}

func NewMemoryRecordCache() *MemoryRecordCache {
	return &MemoryRecordCache{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

func (c *MemoryRecordCache) Get(ctx context.Context, key string) (*model.ActivityRecordModel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.Now().Sub(e.cachedAt) > RecordTTL {
		// lazy purge on read
		delete(c.entries, key)
		return nil, false
	}
	rec := e.rec
	return &rec, true
}

func (c *MemoryRecordCache) Put(ctx context.Context, rec *model.ActivityRecordModel) {
	if rec == nil {
		return
	}
	key := rec.IdentityKey()
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && c.Now().Sub(e.cachedAt) <= RecordTTL &&
		!rec.RecordTimestamp.After(e.rec.RecordTimestamp) {
		return
	}
	c.entries[key] = memoryEntry{rec: *rec, cachedAt: c.Now()}
}

func (c *MemoryRecordCache) Forget(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
