package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlife_backend/internals/features/wordlife/model"
)

func cachedRec(ts time.Time, bible int) *model.ActivityRecordModel {
	return &model.ActivityRecordModel{
		RecordID:           "2026-03-04_41_김철수",
		RecordDate:         "2026-03-04",
		RecordDistrict:     41,
		RecordName:         "김철수",
		RecordBibleReading: bible,
		RecordTimestamp:    ts,
	}
}

func TestMemoryCachePutGet(t *testing.T) {
	c := NewMemoryRecordCache()
	ctx := context.Background()
	rec := cachedRec(time.Now(), 3)

	_, ok := c.Get(ctx, rec.IdentityKey())
	assert.False(t, ok)

	c.Put(ctx, rec)
	got, ok := c.Get(ctx, rec.IdentityKey())
	require.True(t, ok)
	assert.Equal(t, 3, got.RecordBibleReading)
}

func TestMemoryCacheOlderWriteNeverMasksNewer(t *testing.T) {
	c := NewMemoryRecordCache()
	ctx := context.Background()
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	c.Put(ctx, cachedRec(now, 7))
	c.Put(ctx, cachedRec(now.Add(-time.Hour), 3)) // stale write arriving late
	c.Put(ctx, cachedRec(now, 5))                 // equal timestamp loses too

	got, ok := c.Get(ctx, cachedRec(now, 0).IdentityKey())
	require.True(t, ok)
	assert.Equal(t, 7, got.RecordBibleReading)

	c.Put(ctx, cachedRec(now.Add(time.Minute), 9))
	got, _ = c.Get(ctx, cachedRec(now, 0).IdentityKey())
	assert.Equal(t, 9, got.RecordBibleReading)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryRecordCache()
	ctx := context.Background()

	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	c.Now = func() time.Time { return now }

	rec := cachedRec(now, 3)
	c.Put(ctx, rec)

	now = now.Add(RecordTTL - time.Minute)
	_, ok := c.Get(ctx, rec.IdentityKey())
	assert.True(t, ok)

	now = now.Add(2 * time.Minute) // past the 24h mark
	_, ok = c.Get(ctx, rec.IdentityKey())
	assert.False(t, ok)

	// an expired entry never blocks a fresh write, even an older-stamped one
	c.Put(ctx, cachedRec(rec.RecordTimestamp.Add(-time.Hour), 1))
	got, ok := c.Get(ctx, rec.IdentityKey())
	require.True(t, ok)
	assert.Equal(t, 1, got.RecordBibleReading)
}

func TestMemoryCacheForget(t *testing.T) {
	c := NewMemoryRecordCache()
	ctx := context.Background()
	rec := cachedRec(time.Now(), 3)

	c.Put(ctx, rec)
	c.Forget(ctx, rec.IdentityKey())
	_, ok := c.Get(ctx, rec.IdentityKey())
	assert.False(t, ok)
}

func TestMemoryCacheGetReturnsCopy(t *testing.T) {
	c := NewMemoryRecordCache()
	ctx := context.Background()
	rec := cachedRec(time.Now(), 3)
	c.Put(ctx, rec)

	got, _ := c.Get(ctx, rec.IdentityKey())
	got.RecordBibleReading = 99

	again, _ := c.Get(ctx, rec.IdentityKey())
	assert.Equal(t, 3, again.RecordBibleReading)
}
