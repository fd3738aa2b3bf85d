package service

import (
	"context"
	"testing"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/analytics"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func newTestAnalyticsService(t *testing.T, cacheImpl *memoryCache) (*AnalyticsService, *fakeIngredientRepo, *fakeMenuRepo, *fakeSalesRepo) {
	t.Helper()

	ingredientRepo := newFakeIngredientRepo(
		domain.Ingredient{ID: "milk", Name: "Milk", Unit: "l", CostPerUnit: 1.5, CurrentStock: 10, LeadTimeDays: 1, Supplier: "Dairy Co"},
		domain.Ingredient{ID: "salt", Name: "Salt", Unit: "kg", CostPerUnit: 0.5, CurrentStock: 5, LeadTimeDays: 2},
	)
	menuRepo := newFakeMenuRepo(domain.MenuItem{ID: "latte", Name: "Latte", SalesPrice: 10})
	menuRepo.recipes["r1"] = domain.RecipeLine{ID: "r1", MenuItemID: "latte", IngredientID: "milk", Quantity: 1}
	salesRepo := &fakeSalesRepo{records: []domain.SaleRecord{
		{Timestamp: fixedNow.AddDate(0, 0, -1), MenuItemID: "latte", QuantitySold: 150},
	}}

	svc, err := NewAnalyticsService(ingredientRepo, menuRepo, salesRepo, analytics.DefaultPlannerConfig(), cacheImpl)
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow }

	return svc, ingredientRepo, menuRepo, salesRepo
}

func TestListIngredientAnalytics(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(t, &memoryCache{})

	results, warnings, err := svc.ListIngredientAnalytics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, results, 2)

	// sorted by name
	assert.Equal(t, "milk", results[0].IngredientID)
	assert.Equal(t, "salt", results[1].IngredientID)

	milk := results[0]
	assert.InDelta(t, 5, milk.AverageDailyUsage, 1e-9)
	require.NotNil(t, milk.DaysToStockout)
	assert.Equal(t, 2, *milk.DaysToStockout)
	assert.Equal(t, domain.UrgencySoon, milk.Urgency)

	salt := results[1]
	assert.Nil(t, salt.DaysToStockout)
	assert.Equal(t, domain.UrgencyMonitor, salt.Urgency)
}

func TestGetIngredientAnalyticsMissing(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(t, &memoryCache{})

	_, err := svc.GetIngredientAnalytics(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetProcurementPlan(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(t, &memoryCache{})

	plan, err := svc.GetProcurementPlan(context.Background())
	require.NoError(t, err)

	// only milk needs an order; salt has no usage and full coverage
	require.Len(t, plan, 1)
	assert.Equal(t, "milk", plan[0].IngredientID)
	assert.Equal(t, "Dairy Co", plan[0].Supplier)
	assert.InDelta(t, 60, plan[0].OrderQuantity, 1e-9)
	assert.InDelta(t, 90, plan[0].EstimatedCost, 1e-9)
}

func TestGetDashboard(t *testing.T) {
	svc, _, _, _ := newTestAnalyticsService(t, &memoryCache{})

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, dashboard.Items, 2)
	assert.Len(t, dashboard.Procurement, 1)
	assert.Equal(t, domain.UrgencySummary{Soon: 1, Monitor: 1}, dashboard.Summary)
	assert.NotNil(t, dashboard.Warnings)
	assert.Equal(t, fixedNow, dashboard.GeneratedAt)
}

func TestGetDashboardUsesCache(t *testing.T) {
	cacheImpl := &memoryCache{}
	svc, ingredientRepo, _, _ := newTestAnalyticsService(t, cacheImpl)

	first, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// a stale read after a repo change proves the cached payload was served
	ingredientRepo.rows["milk"] = domain.Ingredient{ID: "milk", Name: "Milk", CurrentStock: 999}

	second, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, cacheImpl.InvalidateAll(context.Background()))

	third, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestDashboardWarningsForRecipelessSales(t *testing.T) {
	svc, _, _, salesRepo := newTestAnalyticsService(t, &memoryCache{})
	salesRepo.records = append(salesRepo.records, domain.SaleRecord{
		Timestamp: fixedNow.AddDate(0, 0, -2), MenuItemID: "seasonal-special", QuantitySold: 5,
	})

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, dashboard.Warnings, 1)
	assert.Contains(t, dashboard.Warnings[0], "seasonal-special")
}
