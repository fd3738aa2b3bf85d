package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	// stockHistoryDays is how far back the reconstructed stock curve reaches.
	stockHistoryDays = 7
	// analyzeParallelism bounds the per-ingredient fan-out.
	analyzeParallelism = 8
)

// Snapshot is the read-only input to one analytics run.
type Snapshot struct {
	Ingredients []domain.Ingredient
	Recipes     []domain.RecipeLine
	Sales       []domain.SaleRecord
}

// Engine wires the usage estimator, stock projector and reorder planner into
// one pipeline. All computation is pure; the engine holds only configuration.
type Engine struct {
	cfg       PlannerConfig
	estimator *UsageEstimator
	planner   *ReorderPlanner
}

// NewEngine builds an engine, rejecting invalid configuration.
func NewEngine(cfg PlannerConfig) (*Engine, error) {
	planner, err := NewReorderPlanner(cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       cfg,
		estimator: NewUsageEstimator(cfg.LookbackDays),
		planner:   planner,
	}, nil
}

// Analyze computes the analytics view for every ingredient in the snapshot.
// Ingredients are independent of each other, so the map runs as a bounded
// parallel fan-out; results land in fixed slots so no locking is needed.
func (e *Engine) Analyze(ctx context.Context, now time.Time, snap Snapshot) ([]domain.IngredientAnalytics, []string, error) {
	usage, warnings := e.estimator.EstimateAll(now, snap.Recipes, snap.Sales)

	results := make([]domain.IngredientAnalytics, len(snap.Ingredients))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeParallelism)

	for i, ing := range snap.Ingredients {
		i, ing := i, ing
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = e.analyzeOne(now, ing, usage[ing.ID])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].IngredientID < results[j].IngredientID
	})

	return results, warnings, nil
}

// AnalyzeOne computes the analytics view for a single ingredient against the
// snapshot's sales and recipes.
func (e *Engine) AnalyzeOne(now time.Time, ing domain.Ingredient, snap Snapshot) (domain.IngredientAnalytics, []string) {
	usage, warnings := e.estimator.EstimateAll(now, snap.Recipes, snap.Sales)
	return e.analyzeOne(now, ing, usage[ing.ID]), warnings
}

func (e *Engine) analyzeOne(now time.Time, ing domain.Ingredient, usage UsageResult) domain.IngredientAnalytics {
	if usage.Trend.Direction == "" {
		usage.Trend.Direction = domain.TrendStable
	}
	if usage.ByMenuItem == nil {
		usage.ByMenuItem = []domain.MenuItemUsage{}
	}

	daysToStockout := DaysToStockout(ing.CurrentStock, usage.AverageDailyUsage)
	plan := e.planner.Plan(now, ing, usage.AverageDailyUsage, daysToStockout)

	return domain.IngredientAnalytics{
		IngredientID:          ing.ID,
		Name:                  ing.Name,
		Unit:                  ing.Unit,
		AverageDailyUsage:     usage.AverageDailyUsage,
		Trend:                 usage.Trend,
		DaysToStockout:        daysToStockout,
		RecommendedReorderQty: plan.RecommendedQty,
		RecommendedOrderDate:  plan.OrderByDate,
		Urgency:               plan.Urgency,
		ImpactMessage:         plan.ImpactMessage,
		UsageByMenuItem:       usage.ByMenuItem,
		StockHistory:          StockHistory(now, ing.CurrentStock, usage.AverageDailyUsage, stockHistoryDays),
		ProjectedStock:        ProjectStock(now, ing.CurrentStock, usage.AverageDailyUsage, e.cfg.HorizonDays),
	}
}
