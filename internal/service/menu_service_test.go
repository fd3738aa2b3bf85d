package service

import (
	"context"
	"testing"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuImportRecipesSkipsDanglingReferences(t *testing.T) {
	menuRepo := newFakeMenuRepo(domain.MenuItem{ID: "latte", Name: "Latte", SalesPrice: 10})
	ingredientRepo := newFakeIngredientRepo(domain.Ingredient{ID: "milk", Name: "Milk", CostPerUnit: 1.5})
	svc := NewMenuService(menuRepo, ingredientRepo, &memoryCache{})

	rows := []domain.RecipeLine{
		{ID: "r1", MenuItemID: "latte", IngredientID: "milk", Quantity: 0.2},
		{ID: "r2", MenuItemID: "latte", IngredientID: "oat-milk", Quantity: 0.2}, // unknown ingredient
		{ID: "r3", MenuItemID: "mocha", IngredientID: "milk", Quantity: 0.2},     // unknown menu item
	}

	report, err := svc.ImportRecipes(context.Background(), rows, PolicySkipInvalid)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 2, report.Skipped)
	assert.Len(t, menuRepo.recipes, 1)
}

func TestMenuImportRecipesRejectBatchOnDanglingReference(t *testing.T) {
	menuRepo := newFakeMenuRepo(domain.MenuItem{ID: "latte", Name: "Latte", SalesPrice: 10})
	ingredientRepo := newFakeIngredientRepo()
	svc := NewMenuService(menuRepo, ingredientRepo, &memoryCache{})

	rows := []domain.RecipeLine{
		{ID: "r1", MenuItemID: "latte", IngredientID: "milk", Quantity: 0.2},
	}

	_, err := svc.ImportRecipes(context.Background(), rows, PolicyRejectBatch)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, menuRepo.recipes)
}

func TestMenuSaveRecipeUnknownIngredient(t *testing.T) {
	menuRepo := newFakeMenuRepo(domain.MenuItem{ID: "latte", Name: "Latte", SalesPrice: 10})
	ingredientRepo := newFakeIngredientRepo()
	svc := NewMenuService(menuRepo, ingredientRepo, &memoryCache{})

	err := svc.SaveRecipe(context.Background(), domain.RecipeLine{
		ID: "r1", MenuItemID: "latte", IngredientID: "milk", Quantity: 0.2,
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestMenuSaveRecipeRejectsNonPositiveQuantity(t *testing.T) {
	menuRepo := newFakeMenuRepo(domain.MenuItem{ID: "latte", Name: "Latte", SalesPrice: 10})
	ingredientRepo := newFakeIngredientRepo(domain.Ingredient{ID: "milk", Name: "Milk"})
	svc := NewMenuService(menuRepo, ingredientRepo, &memoryCache{})

	err := svc.SaveRecipe(context.Background(), domain.RecipeLine{
		ID: "r1", MenuItemID: "latte", IngredientID: "milk", Quantity: 0,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestMenuImportItemsInvalidatesCache(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	cacheImpl := &memoryCache{}
	svc := NewMenuService(menuRepo, newFakeIngredientRepo(), cacheImpl)

	_, err := svc.ImportItems(context.Background(), []domain.MenuItem{
		{ID: "latte", Name: "Latte", SalesPrice: 10},
	}, PolicySkipInvalid)
	require.NoError(t, err)

	assert.Equal(t, 1, cacheImpl.invalidations)
}
