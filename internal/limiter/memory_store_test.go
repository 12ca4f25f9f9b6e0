package limiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CountsPerKey(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		n, err := store.Hit(ctx, "10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	n, err := store.Hit(ctx, "10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_WindowResets(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = store.Hit(ctx, "k", time.Minute)
	_, _ = store.Hit(ctx, "k", time.Minute)

	now = now.Add(2 * time.Minute)
	n, err := store.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	const hits = 50

	var wg sync.WaitGroup
	wg.Add(hits)
	for i := 0; i < hits; i++ {
		go func() {
			defer wg.Done()
			_, _ = store.Hit(context.Background(), "shared", time.Minute)
		}()
	}
	wg.Wait()

	n, _ := store.Hit(context.Background(), "shared", time.Minute)
	assert.Equal(t, int64(hits+1), n)
}

func TestMemoryStore_EvictsExpiredBuckets(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := store.Hit(ctx, ip, time.Minute)
		require.NoError(t, err)
	}
	assert.Len(t, store.buckets, 3)

	now = now.Add(2 * time.Minute)
	_, err := store.Hit(ctx, "10.0.0.4", time.Minute)
	require.NoError(t, err)
	assert.Len(t, store.buckets, 1)
	assert.Contains(t, store.buckets, "10.0.0.4")
}
