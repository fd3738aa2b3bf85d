// backend-go/internal/service/analytics_service.go
package service

import (
	"context"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/analytics"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/cache"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalyticsService loads a snapshot of the stored rows and runs the pure
// analytics pipeline over it. It never writes; all I/O happens here at the
// boundary, before and after the computation.
type AnalyticsService struct {
	ingredients repository.IngredientRepository
	menu        repository.MenuRepository
	sales       repository.SalesRepository
	engine      *analytics.Engine
	cfg         analytics.PlannerConfig
	cache       cache.AnalyticsCache
	now         func() time.Time
}

func NewAnalyticsService(
	ingredients repository.IngredientRepository,
	menu repository.MenuRepository,
	sales repository.SalesRepository,
	cfg analytics.PlannerConfig,
	cacheImpl cache.AnalyticsCache,
) (*AnalyticsService, error) {
	engine, err := analytics.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAnalyticsCache()
	}

	return &AnalyticsService{
		ingredients: ingredients,
		menu:        menu,
		sales:       sales,
		engine:      engine,
		cfg:         cfg,
		cache:       cacheImpl,
		now:         time.Now,
	}, nil
}

func (s *AnalyticsService) snapshot(ctx context.Context, now time.Time) (analytics.Snapshot, error) {
	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}

	recipes, err := s.menu.ListRecipes(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}

	sales, err := s.sales.ListWindow(ctx, now.AddDate(0, 0, -s.cfg.LookbackDays), now)
	if err != nil {
		return analytics.Snapshot{}, err
	}

	return analytics.Snapshot{
		Ingredients: ingredients,
		Recipes:     recipes,
		Sales:       sales,
	}, nil
}

// ListIngredientAnalytics recomputes the analytics view for every ingredient.
func (s *AnalyticsService) ListIngredientAnalytics(ctx context.Context) ([]domain.IngredientAnalytics, []string, error) {
	now := s.now()
	snap, err := s.snapshot(ctx, now)
	if err != nil {
		return nil, nil, err
	}

	return s.engine.Analyze(ctx, now, snap)
}

// GetIngredientAnalytics recomputes the analytics view for one ingredient.
func (s *AnalyticsService) GetIngredientAnalytics(ctx context.Context, id string) (*domain.IngredientAnalytics, error) {
	ing, err := s.ingredients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	snap, err := s.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	result, _ := s.engine.AnalyzeOne(now, *ing, snap)
	return &result, nil
}

// GetProcurementPlan returns the prioritized order list.
func (s *AnalyticsService) GetProcurementPlan(ctx context.Context) ([]domain.ProcurementItem, error) {
	if items, ok, err := s.cache.GetProcurement(ctx); err == nil && ok {
		return items, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("analytics: cache get procurement failed")
	}

	now := s.now()
	snap, err := s.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	results, _, err := s.engine.Analyze(ctx, now, snap)
	if err != nil {
		return nil, err
	}

	plan := analytics.BuildProcurementList(results, ingredientIndex(snap.Ingredients))

	if err := s.cache.SetProcurement(ctx, plan); err != nil {
		log.Warn().Err(err).Msg("analytics: cache set procurement failed")
	}

	return plan, nil
}

// GetDashboard bundles the full analytics view, the procurement plan and the
// data-quality warnings into one payload.
func (s *AnalyticsService) GetDashboard(ctx context.Context) (*domain.AnalyticsDashboard, error) {
	if dashboard, ok, err := s.cache.GetDashboard(ctx); err == nil && ok {
		return dashboard, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("analytics: cache get dashboard failed")
	}

	now := s.now()
	snap, err := s.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	results, warnings, err := s.engine.Analyze(ctx, now, snap)
	if err != nil {
		return nil, err
	}
	if warnings == nil {
		warnings = []string{}
	}

	dashboard := &domain.AnalyticsDashboard{
		Items:       results,
		Procurement: analytics.BuildProcurementList(results, ingredientIndex(snap.Ingredients)),
		Summary:     analytics.SummarizeUrgency(results),
		Warnings:    warnings,
		GeneratedAt: now,
	}

	if err := s.cache.SetDashboard(ctx, dashboard); err != nil {
		log.Warn().Err(err).Msg("analytics: cache set dashboard failed")
	}

	return dashboard, nil
}

func ingredientIndex(rows []domain.Ingredient) map[string]domain.Ingredient {
	index := make(map[string]domain.Ingredient, len(rows))
	for _, row := range rows {
		index[row.ID] = row
	}

	return index
}
