package analytics

import "github.com/andresuchdata/cafe-ops/backend-go/internal/domain"

// RollupMenuItemCost computes the live COGS, margin and per-ingredient cost
// breakdown for one menu item from its recipe lines and the current
// ingredient costs. The breakdown entries accumulate into the calculated
// cost, so their sum always matches it exactly.
//
// The function is pure; any change to an ingredient's cost is reflected on
// the next call with no invalidation step.
func RollupMenuItemCost(item domain.MenuItem, lines []domain.RecipeLine, ingredients map[string]domain.Ingredient) (domain.MenuItemCost, error) {
	cost := domain.MenuItemCost{
		MenuItemID:    item.ID,
		Name:          item.Name,
		SalesPrice:    item.SalesPrice,
		HasRecipe:     len(lines) > 0,
		CostBreakdown: make([]domain.CostBreakdownEntry, 0, len(lines)),
	}

	var total float64
	for _, line := range lines {
		ing, ok := ingredients[line.IngredientID]
		if !ok {
			return domain.MenuItemCost{}, domain.NewNotFoundError("ingredient", line.IngredientID)
		}

		entry := domain.CostBreakdownEntry{
			IngredientName: ing.Name,
			Quantity:       line.Quantity,
			UnitCost:       ing.CostPerUnit,
			TotalCost:      line.Quantity * ing.CostPerUnit,
		}
		total += entry.TotalCost
		cost.CostBreakdown = append(cost.CostBreakdown, entry)
	}

	cost.CalculatedCost = total
	if item.SalesPrice > 0 {
		cost.Margin = (item.SalesPrice - total) / item.SalesPrice * 100
	}

	return cost, nil
}
