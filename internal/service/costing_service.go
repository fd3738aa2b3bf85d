// backend-go/internal/service/costing_service.go
package service

import (
	"context"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/analytics"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
)

// CostingService exposes the live cost/margin view over the menu. Costs are
// recomputed from current ingredient costs on every read; there is nothing
// to invalidate.
type CostingService struct {
	menu        repository.MenuRepository
	ingredients repository.IngredientRepository
}

func NewCostingService(menu repository.MenuRepository, ingredients repository.IngredientRepository) *CostingService {
	return &CostingService{menu: menu, ingredients: ingredients}
}

// GetMenuItemCost computes the cost view for one menu item.
func (s *CostingService) GetMenuItemCost(ctx context.Context, id string) (*domain.MenuItemCost, error) {
	item, err := s.menu.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.menu.ListRecipesForItem(ctx, id)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}

	cost, err := analytics.RollupMenuItemCost(*item, lines, ingredientIndex(ingredients))
	if err != nil {
		return nil, err
	}

	return &cost, nil
}

// ListMenuItemCosts computes the cost view for the whole menu.
func (s *CostingService) ListMenuItemCosts(ctx context.Context) ([]domain.MenuItemCost, error) {
	items, err := s.menu.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	recipes, err := s.menu.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}

	index := ingredientIndex(ingredients)
	byMenuItem := make(map[string][]domain.RecipeLine)
	for _, line := range recipes {
		byMenuItem[line.MenuItemID] = append(byMenuItem[line.MenuItemID], line)
	}

	costs := make([]domain.MenuItemCost, 0, len(items))
	for _, item := range items {
		cost, err := analytics.RollupMenuItemCost(item, byMenuItem[item.ID], index)
		if err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	return costs, nil
}
