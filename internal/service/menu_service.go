// backend-go/internal/service/menu_service.go
package service

import (
	"context"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/cache"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

type MenuService struct {
	menu        repository.MenuRepository
	ingredients repository.IngredientRepository
	cache       cache.AnalyticsCache
}

func NewMenuService(menu repository.MenuRepository, ingredients repository.IngredientRepository, cacheImpl cache.AnalyticsCache) *MenuService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAnalyticsCache()
	}
	return &MenuService{menu: menu, ingredients: ingredients, cache: cacheImpl}
}

func (s *MenuService) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.ListItems(ctx)
}

func (s *MenuService) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.GetItem(ctx, id)
}

func (s *MenuService) SaveItem(ctx context.Context, item domain.MenuItem) error {
	if verr := validateMenuItem(0, item); verr != nil {
		return verr
	}

	if _, err := s.menu.UpsertItems(ctx, []domain.MenuItem{item}); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	if err := s.menu.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *MenuService) ListRecipes(ctx context.Context) ([]domain.RecipeLine, error) {
	return s.menu.ListRecipes(ctx)
}

// SaveRecipe upserts a single recipe line. Both referenced ids must exist;
// a dangling reference is a NotFoundError, never silently defaulted.
func (s *MenuService) SaveRecipe(ctx context.Context, line domain.RecipeLine) error {
	if verr := validateRecipeLine(0, line); verr != nil {
		return verr
	}

	if _, err := s.menu.GetItem(ctx, line.MenuItemID); err != nil {
		return err
	}
	if _, err := s.ingredients.Get(ctx, line.IngredientID); err != nil {
		return err
	}

	if _, err := s.menu.UpsertRecipes(ctx, []domain.RecipeLine{line}); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// ImportItems bulk-upserts menu item rows under the given policy.
func (s *MenuService) ImportItems(ctx context.Context, rows []domain.MenuItem, policy ImportPolicy) (*domain.ImportReport, error) {
	var (
		valid []domain.MenuItem
		errs  []*domain.ValidationError
	)

	for i, row := range rows {
		if verr := validateMenuItem(i+1, row); verr != nil {
			errs = append(errs, verr)
			continue
		}
		valid = append(valid, row)
	}

	if policy == PolicyRejectBatch && len(errs) > 0 {
		return nil, rejectBatch(errs)
	}

	imported, err := s.menu.UpsertItems(ctx, valid)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return importReport(imported, errs), nil
}

// ImportRecipes bulk-upserts recipe lines. References are checked against
// the current menu item and ingredient sets; a dangling reference counts as
// an invalid row under the batch policy.
func (s *MenuService) ImportRecipes(ctx context.Context, rows []domain.RecipeLine, policy ImportPolicy) (*domain.ImportReport, error) {
	menuItems, err := s.menu.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}

	knownItems := make(map[string]bool, len(menuItems))
	for _, item := range menuItems {
		knownItems[item.ID] = true
	}
	knownIngredients := make(map[string]bool, len(ingredients))
	for _, ing := range ingredients {
		knownIngredients[ing.ID] = true
	}

	var (
		valid []domain.RecipeLine
		errs  []*domain.ValidationError
	)

	for i, row := range rows {
		rowNum := i + 1
		if verr := validateRecipeLine(rowNum, row); verr != nil {
			errs = append(errs, verr)
			continue
		}
		if !knownItems[row.MenuItemID] {
			errs = append(errs, domain.NewRowValidationError(rowNum, "menu_item_id", "references unknown menu item "+row.MenuItemID))
			continue
		}
		if !knownIngredients[row.IngredientID] {
			errs = append(errs, domain.NewRowValidationError(rowNum, "ingredient_id", "references unknown ingredient "+row.IngredientID))
			continue
		}
		valid = append(valid, row)
	}

	if policy == PolicyRejectBatch && len(errs) > 0 {
		return nil, rejectBatch(errs)
	}

	imported, err := s.menu.UpsertRecipes(ctx, valid)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return importReport(imported, errs), nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("menu: analytics cache invalidation failed")
	}
}
