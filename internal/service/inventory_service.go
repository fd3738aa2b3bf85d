// backend-go/internal/service/inventory_service.go
package service

import (
	"context"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/cache"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

type InventoryService struct {
	repo  repository.IngredientRepository
	cache cache.AnalyticsCache
}

func NewInventoryService(repo repository.IngredientRepository, cacheImpl cache.AnalyticsCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAnalyticsCache()
	}
	return &InventoryService{repo: repo, cache: cacheImpl}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id string) (*domain.Ingredient, error) {
	return s.repo.Get(ctx, id)
}

// Save upserts a single ingredient after validation.
func (s *InventoryService) Save(ctx context.Context, ing domain.Ingredient) error {
	if verr := validateIngredient(0, ing); verr != nil {
		return verr
	}

	if _, err := s.repo.Upsert(ctx, []domain.Ingredient{ing}); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// Import bulk-upserts a batch of ingredient rows under the given policy.
// Under reject-batch, one invalid row fails the whole batch with nothing
// applied; under skip-invalid, bad rows are dropped and reported.
func (s *InventoryService) Import(ctx context.Context, rows []domain.Ingredient, policy ImportPolicy) (*domain.ImportReport, error) {
	var (
		valid []domain.Ingredient
		errs  []*domain.ValidationError
	)

	for i, row := range rows {
		if verr := validateIngredient(i+1, row); verr != nil {
			errs = append(errs, verr)
			continue
		}
		valid = append(valid, row)
	}

	if policy == PolicyRejectBatch && len(errs) > 0 {
		return nil, rejectBatch(errs)
	}

	imported, err := s.repo.Upsert(ctx, valid)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return importReport(imported, errs), nil
}

func (s *InventoryService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory: analytics cache invalidation failed")
	}
}
