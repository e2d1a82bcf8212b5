package feed

import (
	"context"
	"fmt"

	caregiverRepo "nestcare/database/repository/caregiver"
	"nestcare/models"

	"go.uber.org/zap"
)

const featuredLimit = 50

// DefaultFeaturedService implements FeaturedService.
type DefaultFeaturedService struct {
	Repo   caregiverRepo.Repository
	Cache  FeaturedCache
	Logger *zap.Logger
}

// Featured returns the featured caregiver list, serving from cache when
// populated and falling back to the repository (warming the cache as a side
// effect) when it is not. A cold cache is normal after a restart, not an
// error.
func (s *DefaultFeaturedService) Featured(ctx context.Context) ([]models.Caregiver, error) {
	cached, err := s.Cache.GetAllCaregivers(ctx)
	if err != nil {
		s.Logger.Warn("featured cache read failed, falling back to repository", zap.Error(err))
	}
	if len(cached) > 0 {
		return cached, nil
	}

	caregivers, err := s.Repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured caregivers: %w", err)
	}
	for i := range caregivers {
		if err := s.Cache.SetCaregiver(ctx, caregivers[i]); err != nil {
			s.Logger.Warn("failed to warm featured cache",
				zap.String("caregiver", caregivers[i].ID), zap.Error(err))
		}
	}
	return caregivers, nil
}

// Get returns one caregiver profile by ID.
func (s *DefaultFeaturedService) Get(ctx context.Context, id string) (*models.Caregiver, error) {
	caregiver, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load caregiver %s: %w", id, err)
	}
	return caregiver, nil
}

// Save upserts a caregiver profile and keeps the featured cache in step:
// featured profiles are written through, unfeatured ones evicted.
func (s *DefaultFeaturedService) Save(ctx context.Context, caregiver *models.Caregiver) error {
	if err := s.Repo.Upsert(ctx, caregiver); err != nil {
		return fmt.Errorf("failed to save caregiver %s: %w", caregiver.ID, err)
	}
	if caregiver.Featured {
		if err := s.Cache.SetCaregiver(ctx, *caregiver); err != nil {
			s.Logger.Warn("failed to cache caregiver",
				zap.String("caregiver", caregiver.ID), zap.Error(err))
		}
	} else if err := s.Cache.DeleteCaregiver(ctx, caregiver.ID); err != nil {
		s.Logger.Warn("failed to evict caregiver from cache",
			zap.String("caregiver", caregiver.ID), zap.Error(err))
	}
	return nil
}

// Refresh repopulates the cache from the repository.
func (s *DefaultFeaturedService) Refresh(ctx context.Context) error {
	caregivers, err := s.Repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return fmt.Errorf("failed to refresh featured caregivers: %w", err)
	}
	for i := range caregivers {
		if err := s.Cache.SetCaregiver(ctx, caregivers[i]); err != nil {
			s.Logger.Warn("failed to cache caregiver",
				zap.String("caregiver", caregivers[i].ID), zap.Error(err))
		}
	}
	s.Logger.Info("featured caregiver cache refreshed", zap.Int("count", len(caregivers)))
	return nil
}
