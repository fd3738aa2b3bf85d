package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// ReorderPlanner turns a stock projection into a reorder recommendation.
type ReorderPlanner struct {
	cfg PlannerConfig
}

// NewReorderPlanner validates the configuration up front; bad values are
// rejected here, never clamped.
func NewReorderPlanner(cfg PlannerConfig) (*ReorderPlanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ReorderPlanner{cfg: cfg}, nil
}

// ReorderPlan is the recommendation for one ingredient.
type ReorderPlan struct {
	RecommendedQty float64
	OrderByDate    *time.Time
	Urgency        domain.Urgency
	ImpactMessage  string
}

// Plan computes the recommended order for one ingredient.
//
// The urgency tiers are lead-time-relative: an ingredient is critical once
// it would run out before a freshly placed order could arrive, and soon once
// the safety buffer would be eaten into. Ingredients with no projected
// stockout are always monitor and carry no order deadline.
func (p *ReorderPlanner) Plan(now time.Time, ing domain.Ingredient, avgDailyUsage float64, daysToStockout *int) ReorderPlan {
	projectedNeed := math.Ceil(avgDailyUsage * float64(p.cfg.TargetCoverageDays))
	qty := projectedNeed - ing.CurrentStock
	if qty < 0 {
		qty = 0
	}

	plan := ReorderPlan{
		RecommendedQty: qty,
		Urgency:        domain.UrgencyMonitor,
	}

	if daysToStockout == nil {
		plan.ImpactMessage = fmt.Sprintf("low risk: no measurable usage for %s; current stock covers demand indefinitely", ing.Name)
		return plan
	}

	dts := *daysToStockout
	lead := ing.LeadTimeDays
	buffer := lead + p.cfg.SafetyStockDays

	// Clamp so the order-by date never lands in the past.
	offset := dts - lead - p.cfg.SafetyStockDays
	if offset < 0 {
		offset = 0
	}
	orderBy := now.AddDate(0, 0, offset)
	plan.OrderByDate = &orderBy

	switch {
	case dts <= lead:
		plan.Urgency = domain.UrgencyCritical
	case dts <= buffer:
		plan.Urgency = domain.UrgencySoon
	}

	switch {
	case dts <= lead:
		plan.ImpactMessage = fmt.Sprintf(
			"critical: %s runs out in %d day(s), before a replenishment order could arrive (%d day lead time); order immediately",
			ing.Name, dts, lead)
	case dts <= buffer:
		plan.ImpactMessage = fmt.Sprintf(
			"high risk: %s runs out in %d day(s), inside the lead time plus safety buffer of %d day(s); order by %s",
			ing.Name, dts, buffer, orderBy.Format("2006-01-02"))
	case dts <= 2*buffer:
		plan.ImpactMessage = fmt.Sprintf(
			"moderate risk: %s has %d day(s) of cover against a %d day buffer window; plan an order by %s",
			ing.Name, dts, buffer, orderBy.Format("2006-01-02"))
	default:
		plan.ImpactMessage = fmt.Sprintf(
			"low risk: %s has %d day(s) of cover; no action needed before %s",
			ing.Name, dts, orderBy.Format("2006-01-02"))
	}

	return plan
}
