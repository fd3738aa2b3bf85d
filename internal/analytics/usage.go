package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

const (
	trendIncreaseThreshold = 10.0
	trendDecreaseThreshold = -10.0
)

// UsageEstimator derives per-ingredient consumption rates from sales history
// and recipe definitions.
type UsageEstimator struct {
	lookbackDays int
}

// NewUsageEstimator creates an estimator over a lookback window of the given
// length in days.
func NewUsageEstimator(lookbackDays int) *UsageEstimator {
	return &UsageEstimator{lookbackDays: lookbackDays}
}

// UsageResult holds the estimated consumption profile of one ingredient.
type UsageResult struct {
	AverageDailyUsage float64
	Trend             domain.VelocityTrend
	ByMenuItem        []domain.MenuItemUsage
}

// EstimateAll computes usage for every ingredient touched by a sale inside
// the lookback window ending at now. Ingredients absent from the returned map
// had no matched sales and consume nothing.
//
// Sales referencing a menu item without a recipe contribute no usage; they
// are reported once per menu item as a data-quality warning, not an error.
func (e *UsageEstimator) EstimateAll(now time.Time, recipes []domain.RecipeLine, sales []domain.SaleRecord) (map[string]UsageResult, []string) {
	window := float64(e.lookbackDays)
	windowStart := now.AddDate(0, 0, -e.lookbackDays)
	// W/2 days expressed in hours so odd windows split evenly
	halfBoundary := now.Add(-time.Duration(e.lookbackDays) * 12 * time.Hour)

	recipeIndex := make(map[string][]domain.RecipeLine)
	for _, line := range recipes {
		recipeIndex[line.MenuItemID] = append(recipeIndex[line.MenuItemID], line)
	}

	totals := make(map[string]float64)
	olderHalf := make(map[string]float64)
	recentHalf := make(map[string]float64)
	byMenuItem := make(map[string]map[string]float64)
	warned := make(map[string]bool)
	var warnings []string

	for _, sale := range sales {
		if sale.Timestamp.Before(windowStart) || sale.Timestamp.After(now) {
			continue
		}

		lines := recipeIndex[sale.MenuItemID]
		if len(lines) == 0 {
			if !warned[sale.MenuItemID] {
				warned[sale.MenuItemID] = true
				warnings = append(warnings, fmt.Sprintf("menu item %q has sales but no recipe; its consumption is not counted", sale.MenuItemID))
			}
			continue
		}

		qty := float64(sale.QuantitySold)
		for _, line := range lines {
			used := qty * line.Quantity
			totals[line.IngredientID] += used

			if sale.Timestamp.Before(halfBoundary) {
				olderHalf[line.IngredientID] += used
			} else {
				recentHalf[line.IngredientID] += used
			}

			perItem := byMenuItem[line.IngredientID]
			if perItem == nil {
				perItem = make(map[string]float64)
				byMenuItem[line.IngredientID] = perItem
			}
			perItem[sale.MenuItemID] += used
		}
	}

	results := make(map[string]UsageResult, len(totals))
	for id, total := range totals {
		results[id] = UsageResult{
			AverageDailyUsage: total / window,
			Trend:             classifyTrend(olderHalf[id], recentHalf[id]),
			ByMenuItem:        usageBreakdown(byMenuItem[id], total, window),
		}
	}

	sort.Strings(warnings)

	return results, warnings
}

// classifyTrend compares usage totals of the two window halves. Both halves
// span the same number of days, so the raw sums compare directly.
func classifyTrend(older, recent float64) domain.VelocityTrend {
	if older == 0 {
		return domain.VelocityTrend{Direction: domain.TrendStable, ChangePercent: 0}
	}

	change := (recent - older) / older * 100

	direction := domain.TrendStable
	switch {
	case change > trendIncreaseThreshold:
		direction = domain.TrendIncreasing
	case change < trendDecreaseThreshold:
		direction = domain.TrendDecreasing
	}

	return domain.VelocityTrend{Direction: direction, ChangePercent: change}
}

func usageBreakdown(perItem map[string]float64, total, window float64) []domain.MenuItemUsage {
	if len(perItem) == 0 || total == 0 {
		return []domain.MenuItemUsage{}
	}

	breakdown := make([]domain.MenuItemUsage, 0, len(perItem))
	for menuItemID, used := range perItem {
		breakdown = append(breakdown, domain.MenuItemUsage{
			MenuItemID: menuItemID,
			DailyUsage: used / window,
			Percentage: used / total * 100,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].DailyUsage != breakdown[j].DailyUsage {
			return breakdown[i].DailyUsage > breakdown[j].DailyUsage
		}
		return breakdown[i].MenuItemID < breakdown[j].MenuItemID
	})

	return breakdown
}
