package feed

import (
	"context"
	"testing"

	"nestcare/models"
	"nestcare/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (FeaturedCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFeaturedCache(client), mr
}

func TestFeaturedCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cg := models.Caregiver{ID: "cg-1", Name: "Amina Diallo", Rating: 4.9, ReviewCount: 41, HourlyRate: 22, Featured: true}
	require.NoError(t, cache.SetCaregiver(ctx, cg))

	got, err := cache.GetAllCaregivers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, cg.ID, got[0].ID)
	assert.Equal(t, cg.Name, got[0].Name)
	assert.Equal(t, cg.Rating, got[0].Rating)
}

func TestFeaturedCacheSkipsCorruptEntries(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCaregiver(ctx, models.Caregiver{ID: "cg-1", Name: "Amina Diallo"}))
	require.NoError(t, mr.Set(utils.FeedCachePrefix+"broken", "{not json"))

	got, err := cache.GetAllCaregivers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cg-1", got[0].ID)
}

func TestFeaturedCacheDelete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCaregiver(ctx, models.Caregiver{ID: "cg-1", Name: "Amina Diallo"}))
	require.NoError(t, cache.DeleteCaregiver(ctx, "cg-1"))

	got, err := cache.GetAllCaregivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeaturedCacheEntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCaregiver(ctx, models.Caregiver{ID: "cg-1", Name: "Amina Diallo"}))
	mr.FastForward(utils.FeedCacheTTL + 1)

	got, err := cache.GetAllCaregivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
