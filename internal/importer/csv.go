// backend-go/internal/importer/csv.go
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// Typed CSV parsing for the bulk-upload surface. Every column goes through
// explicit conversion; a cell that does not parse becomes a ValidationError
// carrying its row number, never a silently coerced zero.

type csvTable struct {
	header map[string]int
	rows   [][]string
}

func readTable(r io.Reader, required []string) (*csvTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.NewValidationError("header", "file is empty")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range required {
		if _, ok := header[name]; !ok {
			return nil, domain.NewValidationError("header", fmt.Sprintf("missing column %q", name))
		}
	}

	return &csvTable{header: header, rows: records[1:]}, nil
}

func (t *csvTable) cell(row []string, column string) string {
	idx, ok := t.header[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (t *csvTable) floatCell(row []string, rowNum int, column string) (float64, *domain.ValidationError) {
	raw := t.cell(row, column)
	if raw == "" {
		return 0, domain.NewRowValidationError(rowNum, column, "is required")
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewRowValidationError(rowNum, column, fmt.Sprintf("%q is not a number", raw))
	}
	return value, nil
}

func (t *csvTable) optionalFloatCell(row []string, rowNum int, column string) (float64, *domain.ValidationError) {
	if t.cell(row, column) == "" {
		return 0, nil
	}
	return t.floatCell(row, rowNum, column)
}

func (t *csvTable) intCell(row []string, rowNum int, column string) (int, *domain.ValidationError) {
	raw := t.cell(row, column)
	if raw == "" {
		return 0, domain.NewRowValidationError(rowNum, column, "is required")
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewRowValidationError(rowNum, column, fmt.Sprintf("%q is not an integer", raw))
	}
	return value, nil
}

func (t *csvTable) optionalIntCell(row []string, rowNum int, column string) (int, *domain.ValidationError) {
	if t.cell(row, column) == "" {
		return 0, nil
	}
	return t.intCell(row, rowNum, column)
}

// ParseIngredients reads ingredient rows. Row numbers in errors are 1-based
// data rows (the header is row 0).
func ParseIngredients(r io.Reader) ([]domain.Ingredient, []*domain.ValidationError, error) {
	table, err := readTable(r, []string{"ingredient_id", "name", "category", "unit", "cost_per_unit", "current_stock"})
	if err != nil {
		return nil, nil, err
	}

	var (
		rows    []domain.Ingredient
		rowErrs []*domain.ValidationError
	)

	for i, record := range table.rows {
		rowNum := i + 1

		id := table.cell(record, "ingredient_id")
		if id == "" {
			rowErrs = append(rowErrs, domain.NewRowValidationError(rowNum, "ingredient_id", "is required"))
			continue
		}

		cost, verr := table.floatCell(record, rowNum, "cost_per_unit")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		stock, verr := table.floatCell(record, rowNum, "current_stock")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		minStock, verr := table.optionalFloatCell(record, rowNum, "min_stock")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		reorderPoint, verr := table.optionalFloatCell(record, rowNum, "reorder_point")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		leadTime, verr := table.optionalIntCell(record, rowNum, "lead_time_days")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		var expiry *time.Time
		if raw := table.cell(record, "expiry_date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				rowErrs = append(rowErrs, domain.NewRowValidationError(rowNum, "expiry_date", fmt.Sprintf("%q is not a date (want YYYY-MM-DD)", raw)))
				continue
			}
			expiry = &parsed
		}

		rows = append(rows, domain.Ingredient{
			ID:           id,
			Name:         table.cell(record, "name"),
			Category:     table.cell(record, "category"),
			Unit:         table.cell(record, "unit"),
			CostPerUnit:  cost,
			CurrentStock: stock,
			MinStock:     minStock,
			ReorderPoint: reorderPoint,
			LeadTimeDays: leadTime,
			ExpiryDate:   expiry,
			Supplier:     table.cell(record, "supplier"),
		})
	}

	return rows, rowErrs, nil
}

// ParseMenuItems reads menu item rows.
func ParseMenuItems(r io.Reader) ([]domain.MenuItem, []*domain.ValidationError, error) {
	table, err := readTable(r, []string{"item_id", "item_name", "category", "sales_price", "tax_rate"})
	if err != nil {
		return nil, nil, err
	}

	var (
		rows    []domain.MenuItem
		rowErrs []*domain.ValidationError
	)

	for i, record := range table.rows {
		rowNum := i + 1

		id := table.cell(record, "item_id")
		if id == "" {
			rowErrs = append(rowErrs, domain.NewRowValidationError(rowNum, "item_id", "is required"))
			continue
		}

		price, verr := table.floatCell(record, rowNum, "sales_price")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		taxRate, verr := table.floatCell(record, rowNum, "tax_rate")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		rows = append(rows, domain.MenuItem{
			ID:         id,
			Name:       table.cell(record, "item_name"),
			Category:   table.cell(record, "category"),
			SalesPrice: price,
			TaxRate:    taxRate,
		})
	}

	return rows, rowErrs, nil
}

// ParseRecipes reads recipe line rows.
func ParseRecipes(r io.Reader) ([]domain.RecipeLine, []*domain.ValidationError, error) {
	table, err := readTable(r, []string{"recipe_id", "menu_item_id", "ingredient_id", "quantity"})
	if err != nil {
		return nil, nil, err
	}

	var (
		rows    []domain.RecipeLine
		rowErrs []*domain.ValidationError
	)

	for i, record := range table.rows {
		rowNum := i + 1

		id := table.cell(record, "recipe_id")
		menuItemID := table.cell(record, "menu_item_id")
		ingredientID := table.cell(record, "ingredient_id")
		if id == "" || menuItemID == "" || ingredientID == "" {
			rowErrs = append(rowErrs, domain.NewRowValidationError(rowNum, "recipe_id", "recipe_id, menu_item_id and ingredient_id are required"))
			continue
		}

		quantity, verr := table.floatCell(record, rowNum, "quantity")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		rows = append(rows, domain.RecipeLine{
			ID:           id,
			MenuItemID:   menuItemID,
			IngredientID: ingredientID,
			Quantity:     quantity,
		})
	}

	return rows, rowErrs, nil
}

// ParseSales reads sale record rows.
func ParseSales(r io.Reader) ([]domain.SaleRecord, []*domain.ValidationError, error) {
	table, err := readTable(r, []string{"sold_at", "menu_item_id", "quantity_sold"})
	if err != nil {
		return nil, nil, err
	}

	var (
		rows    []domain.SaleRecord
		rowErrs []*domain.ValidationError
	)

	for i, record := range table.rows {
		rowNum := i + 1

		menuItemID := table.cell(record, "menu_item_id")
		if menuItemID == "" {
			rowErrs = append(rowErrs, domain.NewRowValidationError(rowNum, "menu_item_id", "is required"))
			continue
		}

		raw := table.cell(record, "sold_at")
		soldAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			soldAt, err = time.Parse("2006-01-02 15:04:05", raw)
		}
		if err != nil {
			rowErrs = append(rowErrs, domain.NewRowValidationError(rowNum, "sold_at", fmt.Sprintf("%q is not a timestamp", raw)))
			continue
		}

		quantity, verr := table.intCell(record, rowNum, "quantity_sold")
		if verr != nil {
			rowErrs = append(rowErrs, verr)
			continue
		}

		rows = append(rows, domain.SaleRecord{
			Timestamp:    soldAt,
			MenuItemID:   menuItemID,
			QuantitySold: quantity,
		})
	}

	return rows, rowErrs, nil
}
