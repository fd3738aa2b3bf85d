package analytics

import (
	"sort"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// BuildProcurementList merges per-ingredient analytics into a single
// prioritized order list: critical first, then soon, then monitor, and
// ascending days-to-stockout within a tier. Ingredients with no projected
// stockout sort after all finite values. Only ingredients that actually need
// an order appear, and duplicates by ingredient id are collapsed.
func BuildProcurementList(items []domain.IngredientAnalytics, ingredients map[string]domain.Ingredient) []domain.ProcurementItem {
	seen := make(map[string]bool, len(items))
	list := make([]domain.ProcurementItem, 0, len(items))

	for _, item := range items {
		if item.RecommendedReorderQty <= 0 || seen[item.IngredientID] {
			continue
		}
		seen[item.IngredientID] = true

		ing := ingredients[item.IngredientID]
		list = append(list, domain.ProcurementItem{
			IngredientID:   item.IngredientID,
			Name:           item.Name,
			Supplier:       ing.Supplier,
			Unit:           item.Unit,
			Urgency:        item.Urgency,
			DaysToStockout: item.DaysToStockout,
			OrderQuantity:  item.RecommendedReorderQty,
			EstimatedCost:  item.RecommendedReorderQty * ing.CostPerUnit,
			OrderByDate:    item.RecommendedOrderDate,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Urgency.Rank() != b.Urgency.Rank() {
			return a.Urgency.Rank() < b.Urgency.Rank()
		}
		if c := compareDaysToStockout(a.DaysToStockout, b.DaysToStockout); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})

	return list
}

// compareDaysToStockout orders finite values ascending and places nil
// (no projected stockout) after everything else.
func compareDaysToStockout(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// SummarizeUrgency counts analytics rows per urgency tier.
func SummarizeUrgency(items []domain.IngredientAnalytics) domain.UrgencySummary {
	var summary domain.UrgencySummary
	for _, item := range items {
		switch item.Urgency {
		case domain.UrgencyCritical:
			summary.Critical++
		case domain.UrgencySoon:
			summary.Soon++
		default:
			summary.Monitor++
		}
	}

	return summary
}
