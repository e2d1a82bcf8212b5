package feed

import (
	"context"

	"nestcare/models"
)

// FeaturedCache caches featured caregiver profiles for booking enrichment.
type FeaturedCache interface {
	SetCaregiver(ctx context.Context, caregiver models.Caregiver) error
	GetAllCaregivers(ctx context.Context) ([]models.Caregiver, error)
	DeleteCaregiver(ctx context.Context, id string) error
}

// FeaturedService serves caregiver profiles and the featured list,
// cache-first with a repository fallback, keeping the cache in step on
// writes.
type FeaturedService interface {
	Featured(ctx context.Context) ([]models.Caregiver, error)
	Refresh(ctx context.Context) error
	Get(ctx context.Context, id string) (*models.Caregiver, error)
	Save(ctx context.Context, caregiver *models.Caregiver) error
}
