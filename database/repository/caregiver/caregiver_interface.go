package caregiverRepo

import (
	"context"

	"nestcare/models"
)

// Repository defines data access for caregiver profiles.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Caregiver, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Caregiver, error)
	Upsert(ctx context.Context, caregiver *models.Caregiver) error
}
