// backend-go/internal/domain/models.go
package domain

import "time"

// Ingredient is a stocked raw material. Rows are owned by the persistence
// layer; the analytics core only ever reads them.
type Ingredient struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Category     string     `json:"category" db:"category"`
	Unit         string     `json:"unit" db:"unit"`
	CostPerUnit  float64    `json:"cost_per_unit" db:"cost_per_unit"`
	CurrentStock float64    `json:"current_stock" db:"current_stock"`
	MinStock     float64    `json:"min_stock" db:"min_stock"`
	ReorderPoint float64    `json:"reorder_point" db:"reorder_point"`
	LeadTimeDays int        `json:"lead_time_days" db:"lead_time_days"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
	Supplier     string     `json:"supplier" db:"supplier"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// MenuItem is a sellable product.
type MenuItem struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Category   string    `json:"category" db:"category"`
	SalesPrice float64   `json:"sales_price" db:"sales_price"`
	TaxRate    float64   `json:"tax_rate" db:"tax_rate"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// RecipeLine joins a menu item to one of its ingredients with the quantity
// consumed per unit sold.
type RecipeLine struct {
	ID           string  `json:"id" db:"id"`
	MenuItemID   string  `json:"menu_item_id" db:"menu_item_id"`
	IngredientID string  `json:"ingredient_id" db:"ingredient_id"`
	Quantity     float64 `json:"quantity" db:"quantity"`
}

// SaleRecord is a single point-of-sale event.
type SaleRecord struct {
	ID           int64     `json:"id" db:"id"`
	Timestamp    time.Time `json:"timestamp" db:"sold_at"`
	MenuItemID   string    `json:"menu_item_id" db:"menu_item_id"`
	QuantitySold int       `json:"quantity_sold" db:"quantity_sold"`
}

// TrendDirection classifies the short-term change in consumption rate.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// VelocityTrend compares the recent half of the lookback window against the
// older half.
type VelocityTrend struct {
	Direction     TrendDirection `json:"direction"`
	ChangePercent float64        `json:"change_percent"`
}

// MenuItemUsage attributes a share of an ingredient's daily usage to one
// menu item.
type MenuItemUsage struct {
	MenuItemID string  `json:"menu_item_id"`
	DailyUsage float64 `json:"daily_usage"`
	Percentage float64 `json:"percentage"`
}

// StockPoint is one step of a stock curve, projected or reconstructed.
type StockPoint struct {
	Date  time.Time `json:"date"`
	Level float64   `json:"stock"`
}

// IngredientAnalytics is the derived view over one ingredient. It is never
// persisted; identical inputs always produce identical output.
type IngredientAnalytics struct {
	IngredientID          string          `json:"ingredient_id"`
	Name                  string          `json:"name"`
	Unit                  string          `json:"unit"`
	AverageDailyUsage     float64         `json:"average_daily_usage"`
	Trend                 VelocityTrend   `json:"velocity_trend"`
	DaysToStockout        *int            `json:"days_to_stockout"`
	RecommendedReorderQty float64         `json:"recommended_reorder_qty"`
	RecommendedOrderDate  *time.Time      `json:"recommended_order_date"`
	Urgency               Urgency         `json:"urgency_status"`
	ImpactMessage         string          `json:"impact_message"`
	UsageByMenuItem       []MenuItemUsage `json:"usage_by_menu_item"`
	StockHistory          []StockPoint    `json:"stock_history"`
	ProjectedStock        []StockPoint    `json:"projected_stock"`
}

// CostBreakdownEntry is one ingredient's contribution to a menu item's COGS.
type CostBreakdownEntry struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	UnitCost       float64 `json:"unit_cost"`
	TotalCost      float64 `json:"total_cost"`
}

// MenuItemCost is the live cost/margin view over one menu item.
// HasRecipe is false when no recipe lines exist; the 100% margin that falls
// out of a zero COGS should then be presented as "no recipe data".
type MenuItemCost struct {
	MenuItemID     string               `json:"menu_item_id"`
	Name           string               `json:"name"`
	SalesPrice     float64              `json:"sales_price"`
	CalculatedCost float64              `json:"calculated_cost"`
	Margin         float64              `json:"margin"`
	HasRecipe      bool                 `json:"has_recipe"`
	CostBreakdown  []CostBreakdownEntry `json:"cost_breakdown"`
}

// ProcurementItem is one line of the prioritized order list.
type ProcurementItem struct {
	IngredientID   string     `json:"ingredient_id"`
	Name           string     `json:"name"`
	Supplier       string     `json:"supplier"`
	Unit           string     `json:"unit"`
	Urgency        Urgency    `json:"urgency_status"`
	DaysToStockout *int       `json:"days_to_stockout"`
	OrderQuantity  float64    `json:"order_quantity"`
	EstimatedCost  float64    `json:"estimated_cost"`
	OrderByDate    *time.Time `json:"order_by_date"`
}

// UrgencySummary counts ingredients per urgency tier.
type UrgencySummary struct {
	Critical int `json:"critical"`
	Soon     int `json:"soon"`
	Monitor  int `json:"monitor"`
}

// AnalyticsDashboard bundles everything the inventory dashboard renders.
type AnalyticsDashboard struct {
	Items       []IngredientAnalytics `json:"items"`
	Procurement []ProcurementItem     `json:"procurement"`
	Summary     UrgencySummary        `json:"summary"`
	Warnings    []string              `json:"warnings"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// ImportReport summarizes the outcome of one bulk upload batch.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
