// backend-go/internal/service/validate.go
package service

import (
	"strings"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// Business validation applied to every write path, CSV or direct call.
// Negative stock or cost is a data-entry error, not a valid state.

func validateIngredient(row int, ing domain.Ingredient) *domain.ValidationError {
	switch {
	case strings.TrimSpace(ing.ID) == "":
		return domain.NewRowValidationError(row, "ingredient_id", "is required")
	case strings.TrimSpace(ing.Name) == "":
		return domain.NewRowValidationError(row, "name", "is required")
	case ing.CostPerUnit < 0:
		return domain.NewRowValidationError(row, "cost_per_unit", "must not be negative")
	case ing.CurrentStock < 0:
		return domain.NewRowValidationError(row, "current_stock", "must not be negative")
	case ing.MinStock < 0:
		return domain.NewRowValidationError(row, "min_stock", "must not be negative")
	case ing.ReorderPoint < 0:
		return domain.NewRowValidationError(row, "reorder_point", "must not be negative")
	case ing.LeadTimeDays < 0:
		return domain.NewRowValidationError(row, "lead_time_days", "must not be negative")
	}

	return nil
}

func validateMenuItem(row int, item domain.MenuItem) *domain.ValidationError {
	switch {
	case strings.TrimSpace(item.ID) == "":
		return domain.NewRowValidationError(row, "item_id", "is required")
	case strings.TrimSpace(item.Name) == "":
		return domain.NewRowValidationError(row, "item_name", "is required")
	case item.SalesPrice < 0:
		return domain.NewRowValidationError(row, "sales_price", "must not be negative")
	case item.TaxRate < 0:
		return domain.NewRowValidationError(row, "tax_rate", "must not be negative")
	}

	return nil
}

func validateRecipeLine(row int, line domain.RecipeLine) *domain.ValidationError {
	switch {
	case strings.TrimSpace(line.ID) == "":
		return domain.NewRowValidationError(row, "recipe_id", "is required")
	case strings.TrimSpace(line.MenuItemID) == "":
		return domain.NewRowValidationError(row, "menu_item_id", "is required")
	case strings.TrimSpace(line.IngredientID) == "":
		return domain.NewRowValidationError(row, "ingredient_id", "is required")
	case line.Quantity <= 0:
		return domain.NewRowValidationError(row, "quantity", "must be positive")
	}

	return nil
}

func validateSaleRecord(row int, sale domain.SaleRecord) *domain.ValidationError {
	switch {
	case strings.TrimSpace(sale.MenuItemID) == "":
		return domain.NewRowValidationError(row, "menu_item_id", "is required")
	case sale.Timestamp.IsZero():
		return domain.NewRowValidationError(row, "sold_at", "is required")
	case sale.QuantitySold < 0:
		return domain.NewRowValidationError(row, "quantity_sold", "must not be negative")
	}

	return nil
}
