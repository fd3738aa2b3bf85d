package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredients(t *testing.T) {
	csv := strings.Join([]string{
		"ingredient_id,name,category,unit,cost_per_unit,current_stock,min_stock,reorder_point,lead_time_days,expiry_date,supplier",
		"milk,Whole Milk,dairy,l,1.5,40,10,15,1,2025-07-05,Dairy Co",
		"beans,Espresso Beans,coffee,kg,50,12,,,3,,",
	}, "\n")

	rows, rowErrs, err := ParseIngredients(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	milk := rows[0]
	assert.Equal(t, "milk", milk.ID)
	assert.Equal(t, "Whole Milk", milk.Name)
	assert.InDelta(t, 1.5, milk.CostPerUnit, 1e-9)
	assert.InDelta(t, 40, milk.CurrentStock, 1e-9)
	assert.Equal(t, 1, milk.LeadTimeDays)
	assert.Equal(t, "Dairy Co", milk.Supplier)
	require.NotNil(t, milk.ExpiryDate)
	assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), *milk.ExpiryDate)

	beans := rows[1]
	assert.Zero(t, beans.MinStock)
	assert.Nil(t, beans.ExpiryDate)
}

func TestParseIngredientsReportsBadRows(t *testing.T) {
	csv := strings.Join([]string{
		"ingredient_id,name,category,unit,cost_per_unit,current_stock",
		",Whole Milk,dairy,l,1.5,40",
		"beans,Espresso Beans,coffee,kg,abc,12",
		"sugar,Sugar,baking,kg,2,8",
	}, "\n")

	rows, rowErrs, err := ParseIngredients(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "sugar", rows[0].ID)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 1, rowErrs[0].Row)
	assert.Equal(t, "ingredient_id", rowErrs[0].Field)
	assert.Equal(t, 2, rowErrs[1].Row)
	assert.Equal(t, "cost_per_unit", rowErrs[1].Field)
}

func TestParseIngredientsMissingColumn(t *testing.T) {
	csv := "ingredient_id,name,category,unit,current_stock\nmilk,Whole Milk,dairy,l,40"

	_, _, err := ParseIngredients(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "cost_per_unit")
}

func TestParseMenuItems(t *testing.T) {
	csv := strings.Join([]string{
		"item_id,item_name,category,sales_price,tax_rate",
		"latte,Latte,coffee,10,0.1",
		"latte2,Oat Latte,coffee,not-a-price,0.1",
	}, "\n")

	rows, rowErrs, err := ParseMenuItems(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "latte", rows[0].ID)
	assert.InDelta(t, 10, rows[0].SalesPrice, 1e-9)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, "sales_price", rowErrs[0].Field)
}

func TestParseRecipes(t *testing.T) {
	csv := strings.Join([]string{
		"recipe_id,menu_item_id,ingredient_id,quantity",
		"r1,latte,milk,0.2",
		"r2,,milk,0.2",
	}, "\n")

	rows, rowErrs, err := ParseRecipes(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].ID)
	assert.InDelta(t, 0.2, rows[0].Quantity, 1e-9)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 2, rowErrs[0].Row)
}

func TestParseSales(t *testing.T) {
	csv := strings.Join([]string{
		"sold_at,menu_item_id,quantity_sold",
		"2025-06-29T10:30:00Z,latte,3",
		"2025-06-29 11:00:00,latte,2",
		"yesterday,latte,2",
	}, "\n")

	rows, rowErrs, err := ParseSales(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, time.Date(2025, 6, 29, 10, 30, 0, 0, time.UTC), rows[0].Timestamp)
	assert.Equal(t, 3, rows[0].QuantitySold)
	assert.Equal(t, time.Date(2025, 6, 29, 11, 0, 0, 0, time.UTC), rows[1].Timestamp)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, "sold_at", rowErrs[0].Field)
	assert.Equal(t, 3, rowErrs[0].Row)
}

func TestParseEmptyFile(t *testing.T) {
	_, _, err := ParseSales(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
