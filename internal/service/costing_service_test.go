package service

import (
	"context"
	"testing"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCostingService() *CostingService {
	ingredientRepo := newFakeIngredientRepo(
		domain.Ingredient{ID: "milk", Name: "Milk", CostPerUnit: 3},
		domain.Ingredient{ID: "beans", Name: "Beans", CostPerUnit: 50},
	)
	menuRepo := newFakeMenuRepo(
		domain.MenuItem{ID: "latte", Name: "Latte", SalesPrice: 10},
		domain.MenuItem{ID: "water", Name: "Still Water", SalesPrice: 2},
	)
	menuRepo.recipes["r1"] = domain.RecipeLine{ID: "r1", MenuItemID: "latte", IngredientID: "milk", Quantity: 0.5}
	menuRepo.recipes["r2"] = domain.RecipeLine{ID: "r2", MenuItemID: "latte", IngredientID: "beans", Quantity: 0.02}

	return NewCostingService(menuRepo, ingredientRepo)
}

func TestGetMenuItemCost(t *testing.T) {
	svc := newTestCostingService()

	cost, err := svc.GetMenuItemCost(context.Background(), "latte")
	require.NoError(t, err)

	assert.True(t, cost.HasRecipe)
	assert.InDelta(t, 2.5, cost.CalculatedCost, 1e-9)
	assert.InDelta(t, 75, cost.Margin, 1e-9)
	assert.Len(t, cost.CostBreakdown, 2)
}

func TestGetMenuItemCostMissingItem(t *testing.T) {
	svc := newTestCostingService()

	_, err := svc.GetMenuItemCost(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListMenuItemCosts(t *testing.T) {
	svc := newTestCostingService()

	costs, err := svc.ListMenuItemCosts(context.Background())
	require.NoError(t, err)
	require.Len(t, costs, 2)

	byID := make(map[string]domain.MenuItemCost, len(costs))
	for _, cost := range costs {
		byID[cost.MenuItemID] = cost
	}

	assert.True(t, byID["latte"].HasRecipe)
	assert.False(t, byID["water"].HasRecipe)
	assert.Zero(t, byID["water"].CalculatedCost)
	assert.InDelta(t, 100, byID["water"].Margin, 1e-9)
}
