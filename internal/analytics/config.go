package analytics

import "github.com/andresuchdata/cafe-ops/backend-go/internal/domain"

// PlannerConfig holds the planning knobs shared by the analytics engine.
type PlannerConfig struct {
	SafetyStockDays    int // buffer coverage held beyond lead time
	TargetCoverageDays int // days of demand a reorder should cover
	LookbackDays       int // sales window used to estimate usage
	HorizonDays        int // length of the projected stock curve
}

// DefaultPlannerConfig returns the stock planning defaults.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		SafetyStockDays:    2,
		TargetCoverageDays: 14,
		LookbackDays:       30,
		HorizonDays:        60,
	}
}

// Validate rejects invalid configuration instead of clamping it.
func (c PlannerConfig) Validate() error {
	if c.SafetyStockDays < 0 {
		return domain.NewValidationError("safety_stock_days", "must not be negative")
	}
	if c.TargetCoverageDays < 0 {
		return domain.NewValidationError("target_coverage_days", "must not be negative")
	}
	if c.LookbackDays <= 0 {
		return domain.NewValidationError("lookback_days", "must be positive")
	}
	if c.HorizonDays <= 0 {
		return domain.NewValidationError("horizon_days", "must be positive")
	}

	return nil
}
