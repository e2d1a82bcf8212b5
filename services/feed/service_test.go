package feed

import (
	"context"
	"errors"
	"testing"

	"nestcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCaregiverRepo struct {
	caregivers []models.Caregiver
	upserts    []models.Caregiver
	err        error
	calls      int
}

func (r *fakeCaregiverRepo) GetByID(ctx context.Context, id string) (*models.Caregiver, error) {
	for i := range r.caregivers {
		if r.caregivers[i].ID == id {
			return &r.caregivers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeCaregiverRepo) ListFeatured(ctx context.Context, limit int) ([]models.Caregiver, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.caregivers, nil
}

func (r *fakeCaregiverRepo) Upsert(ctx context.Context, caregiver *models.Caregiver) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, *caregiver)
	return nil
}

type memoryCache struct {
	entries map[string]models.Caregiver
	setErr  error
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]models.Caregiver{}}
}

func (c *memoryCache) SetCaregiver(ctx context.Context, caregiver models.Caregiver) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[caregiver.ID] = caregiver
	return nil
}

func (c *memoryCache) GetAllCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	var out []models.Caregiver
	for _, cg := range c.entries {
		out = append(out, cg)
	}
	return out, nil
}

func (c *memoryCache) DeleteCaregiver(ctx context.Context, id string) error {
	delete(c.entries, id)
	return nil
}

func TestFeaturedColdCacheWarmsFromRepo(t *testing.T) {
	repo := &fakeCaregiverRepo{caregivers: []models.Caregiver{
		{ID: "cg-1", Name: "Amina Diallo", Featured: true},
		{ID: "cg-2", Name: "Priya Shah", Featured: true},
	}}
	cache := newMemoryCache()
	svc := &DefaultFeaturedService{Repo: repo, Cache: cache, Logger: zap.NewNop()}

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, repo.calls)
	assert.Len(t, cache.entries, 2)

	// Second call serves from cache without touching the repository.
	got, err = svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, repo.calls)
}

func TestFeaturedCacheErrorFallsBack(t *testing.T) {
	repo := &fakeCaregiverRepo{caregivers: []models.Caregiver{{ID: "cg-1", Name: "Amina Diallo"}}}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	svc := &DefaultFeaturedService{Repo: repo, Cache: cache, Logger: zap.NewNop()}

	got, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFeaturedRepoErrorPropagates(t *testing.T) {
	repo := &fakeCaregiverRepo{err: errors.New("mongo timeout")}
	svc := &DefaultFeaturedService{Repo: repo, Cache: newMemoryCache(), Logger: zap.NewNop()}

	_, err := svc.Featured(context.Background())
	assert.Error(t, err)
}

func TestGetCaregiver(t *testing.T) {
	repo := &fakeCaregiverRepo{caregivers: []models.Caregiver{{ID: "cg-1", Name: "Amina Diallo"}}}
	svc := &DefaultFeaturedService{Repo: repo, Cache: newMemoryCache(), Logger: zap.NewNop()}

	got, err := svc.Get(context.Background(), "cg-1")
	require.NoError(t, err)
	assert.Equal(t, "Amina Diallo", got.Name)

	_, err = svc.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSaveFeaturedWarmsCache(t *testing.T) {
	repo := &fakeCaregiverRepo{}
	cache := newMemoryCache()
	svc := &DefaultFeaturedService{Repo: repo, Cache: cache, Logger: zap.NewNop()}

	cg := models.Caregiver{ID: "cg-1", Name: "Amina Diallo", Featured: true}
	require.NoError(t, svc.Save(context.Background(), &cg))
	require.Len(t, repo.upserts, 1)
	assert.Contains(t, cache.entries, "cg-1")

	// Unfeaturing evicts the cache entry.
	cg.Featured = false
	require.NoError(t, svc.Save(context.Background(), &cg))
	assert.NotContains(t, cache.entries, "cg-1")
}

func TestSaveRepoErrorPropagates(t *testing.T) {
	repo := &fakeCaregiverRepo{err: errors.New("mongo timeout")}
	cache := newMemoryCache()
	svc := &DefaultFeaturedService{Repo: repo, Cache: cache, Logger: zap.NewNop()}

	err := svc.Save(context.Background(), &models.Caregiver{ID: "cg-1", Featured: true})
	assert.Error(t, err)
	assert.Empty(t, cache.entries, "a failed upsert must not warm the cache")
}

func TestRefreshRepopulatesCache(t *testing.T) {
	repo := &fakeCaregiverRepo{caregivers: []models.Caregiver{{ID: "cg-1", Name: "Amina Diallo"}}}
	cache := newMemoryCache()
	svc := &DefaultFeaturedService{Repo: repo, Cache: cache, Logger: zap.NewNop()}

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, cache.entries, 1)
}
