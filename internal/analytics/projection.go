package analytics

import (
	"math"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// ProjectStock returns the projected stock curve for day 0 through
// horizonDays, assuming a constant daily draw. The curve never goes negative
// and terminates early once it reaches zero.
func ProjectStock(now time.Time, currentStock, avgDailyUsage float64, horizonDays int) []domain.StockPoint {
	points := make([]domain.StockPoint, 0, horizonDays+1)
	for day := 0; day <= horizonDays; day++ {
		level := currentStock - avgDailyUsage*float64(day)
		if level < 0 {
			level = 0
		}

		points = append(points, domain.StockPoint{
			Date:  now.AddDate(0, 0, day),
			Level: level,
		})

		if level == 0 {
			break
		}
	}

	return points
}

// DaysToStockout returns ceil(currentStock / avgDailyUsage). When usage is
// zero there is no projected stockout and the result is nil.
func DaysToStockout(currentStock, avgDailyUsage float64) *int {
	if avgDailyUsage <= 0 {
		return nil
	}

	days := int(math.Ceil(currentStock / avgDailyUsage))
	if days < 0 {
		days = 0
	}

	return &days
}

// StockHistory reconstructs an estimated trailing stock curve by walking the
// average usage rate back from the current level.
func StockHistory(now time.Time, currentStock, avgDailyUsage float64, days int) []domain.StockPoint {
	points := make([]domain.StockPoint, 0, days+1)
	for d := days; d >= 0; d-- {
		points = append(points, domain.StockPoint{
			Date:  now.AddDate(0, 0, -d),
			Level: currentStock + avgDailyUsage*float64(d),
		})
	}

	return points
}
