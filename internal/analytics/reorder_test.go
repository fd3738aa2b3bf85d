package analytics

import (
	"strings"
	"testing"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T) *ReorderPlanner {
	t.Helper()
	planner, err := NewReorderPlanner(DefaultPlannerConfig())
	require.NoError(t, err)
	return planner
}

func TestNewReorderPlannerRejectsBadConfig(t *testing.T) {
	cfg := DefaultPlannerConfig()
	cfg.SafetyStockDays = -1

	_, err := NewReorderPlanner(cfg)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPlanRecommendedQuantity(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name    string
		stock   float64
		usage   float64
		wantQty float64
	}{
		// target coverage is 14 days
		{"short of coverage", 100, 10, 40},
		{"already covered", 300, 10, 0},
		{"fractional need rounds up", 0, 0.3, 5}, // ceil(4.2)
		{"no usage", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := domain.Ingredient{ID: "milk", Name: "Milk", CurrentStock: tt.stock, LeadTimeDays: 2}
			plan := planner.Plan(testNow, ing, tt.usage, DaysToStockout(tt.stock, tt.usage))
			assert.InDelta(t, tt.wantQty, plan.RecommendedQty, 1e-9)
		})
	}
}

func TestPlanUrgencyTiers(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name string
		dts  *int
		lead int
		want domain.Urgency
	}{
		{"runs out inside lead time", intPtr(2), 3, domain.UrgencyCritical},
		{"runs out exactly at lead time", intPtr(3), 3, domain.UrgencyCritical},
		{"runs out inside safety buffer", intPtr(5), 3, domain.UrgencySoon},
		{"comfortably covered", intPtr(6), 3, domain.UrgencyMonitor},
		{"no projected stockout", nil, 3, domain.UrgencyMonitor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := domain.Ingredient{ID: "beans", Name: "Beans", CurrentStock: 10, LeadTimeDays: tt.lead}
			plan := planner.Plan(testNow, ing, 1, tt.dts)
			assert.Equal(t, tt.want, plan.Urgency)
		})
	}
}

func TestPlanOrderByDate(t *testing.T) {
	planner := newTestPlanner(t)
	ing := domain.Ingredient{ID: "beans", Name: "Beans", CurrentStock: 10, LeadTimeDays: 3}

	plan := planner.Plan(testNow, ing, 1, intPtr(10))
	require.NotNil(t, plan.OrderByDate)
	// 10 days of cover minus 3 lead minus 2 safety
	assert.Equal(t, testNow.AddDate(0, 0, 5), *plan.OrderByDate)
}

func TestPlanOrderByDateNeverInThePast(t *testing.T) {
	planner := newTestPlanner(t)
	ing := domain.Ingredient{ID: "milk", Name: "Milk", CurrentStock: 10, LeadTimeDays: 3}

	plan := planner.Plan(testNow, ing, 5, intPtr(2))
	require.NotNil(t, plan.OrderByDate)
	assert.Equal(t, testNow, *plan.OrderByDate)
}

func TestPlanNoStockoutHasNoDeadline(t *testing.T) {
	planner := newTestPlanner(t)
	ing := domain.Ingredient{ID: "salt", Name: "Salt", CurrentStock: 100, LeadTimeDays: 1}

	plan := planner.Plan(testNow, ing, 0, nil)
	assert.Nil(t, plan.OrderByDate)
	assert.Equal(t, domain.UrgencyMonitor, plan.Urgency)
	assert.True(t, strings.HasPrefix(plan.ImpactMessage, "low risk:"))
}

func TestPlanImpactBands(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		name       string
		dts        int
		wantPrefix string
	}{
		{"critical band", 2, "critical:"},
		{"high risk band", 5, "high risk:"},
		{"moderate risk band", 8, "moderate risk:"},
		{"low risk band", 20, "low risk:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := domain.Ingredient{ID: "beans", Name: "Beans", CurrentStock: 10, LeadTimeDays: 3}
			plan := planner.Plan(testNow, ing, 1, intPtr(tt.dts))
			assert.True(t, strings.HasPrefix(plan.ImpactMessage, tt.wantPrefix),
				"message %q should start with %q", plan.ImpactMessage, tt.wantPrefix)
		})
	}
}
