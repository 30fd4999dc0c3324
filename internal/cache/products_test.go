package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectstore_backend/internal/models"
)

func newTestCache(t *testing.T) (*ProductCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewProductCache(rdb), mr
}

func TestProductCacheRoundtrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	list := []models.Product{{Title: "Portfolio React", Price: 120}}
	c.Set(ctx, list)

	got, ok := c.Get(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Portfolio React", got[0].Title)
}

func TestProductCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, []models.Product{{Title: "Script Python"}})
	mr.FastForward(ProductCacheTTL + time.Second)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestProductCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, []models.Product{{Title: "Portfolio React"}})
	c.Invalidate(ctx)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestProductCacheDropsCorruptPayload(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("cache:products", "pas du json"))

	_, ok := c.Get(ctx)
	assert.False(t, ok)
	// L'entrée corrompue est purgée.
	assert.False(t, mr.Exists("cache:products"))
}

func TestProductCacheNilSafe(t *testing.T) {
	var c *ProductCache
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)
	c.Set(ctx, nil)
	c.Invalidate(ctx)
}
