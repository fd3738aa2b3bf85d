package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStockDecaysAndStopsAtZero(t *testing.T) {
	points := ProjectStock(testNow, 10, 4, 60)

	// 10, 6, 2, 0 and then the curve terminates
	require.Len(t, points, 4)
	assert.InDelta(t, 10, points[0].Level, 1e-9)
	assert.InDelta(t, 6, points[1].Level, 1e-9)
	assert.InDelta(t, 2, points[2].Level, 1e-9)
	assert.InDelta(t, 0, points[3].Level, 1e-9)

	assert.Equal(t, testNow, points[0].Date)
	assert.Equal(t, testNow.AddDate(0, 0, 3), points[3].Date)
}

func TestProjectStockFlatWhenNoUsage(t *testing.T) {
	points := ProjectStock(testNow, 25, 0, 14)

	require.Len(t, points, 15)
	for _, p := range points {
		assert.InDelta(t, 25, p.Level, 1e-9)
	}
}

func TestProjectStockNeverNegative(t *testing.T) {
	points := ProjectStock(testNow, 3, 10, 60)

	require.Len(t, points, 2)
	assert.InDelta(t, 3, points[0].Level, 1e-9)
	assert.InDelta(t, 0, points[1].Level, 1e-9)
}

func TestDaysToStockout(t *testing.T) {
	tests := []struct {
		name  string
		stock float64
		usage float64
		want  *int
	}{
		{"rounds up partial days", 10, 4, intPtr(3)},
		{"exact division", 10, 5, intPtr(2)},
		{"already out of stock", 0, 5, intPtr(0)},
		{"no usage means no stockout", 10, 0, nil},
		{"negative usage means no stockout", 10, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysToStockout(tt.stock, tt.usage)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestStockHistoryWalksUsageBack(t *testing.T) {
	points := StockHistory(testNow, 10, 2, 7)

	require.Len(t, points, 8)
	assert.Equal(t, testNow.AddDate(0, 0, -7), points[0].Date)
	assert.InDelta(t, 24, points[0].Level, 1e-9)
	assert.Equal(t, testNow, points[7].Date)
	assert.InDelta(t, 10, points[7].Level, 1e-9)
}

func intPtr(v int) *int { return &v }
