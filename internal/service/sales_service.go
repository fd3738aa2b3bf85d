// backend-go/internal/service/sales_service.go
package service

import (
	"context"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/cache"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

type SalesService struct {
	sales repository.SalesRepository
	menu  repository.MenuRepository
	cache cache.AnalyticsCache
}

func NewSalesService(sales repository.SalesRepository, menu repository.MenuRepository, cacheImpl cache.AnalyticsCache) *SalesService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAnalyticsCache()
	}
	return &SalesService{sales: sales, menu: menu, cache: cacheImpl}
}

// Record inserts a batch of sale records under the given policy. Sales
// referencing unknown menu items are still accepted; the analytics layer
// reports them as data-quality warnings rather than dropping history.
func (s *SalesService) Record(ctx context.Context, records []domain.SaleRecord, policy ImportPolicy) (*domain.ImportReport, error) {
	var (
		valid []domain.SaleRecord
		errs  []*domain.ValidationError
	)

	for i, record := range records {
		if verr := validateSaleRecord(i+1, record); verr != nil {
			errs = append(errs, verr)
			continue
		}
		valid = append(valid, record)
	}

	if policy == PolicyRejectBatch && len(errs) > 0 {
		return nil, rejectBatch(errs)
	}

	imported, err := s.sales.Insert(ctx, valid)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return importReport(imported, errs), nil
}

// ListWindow returns the sales of the trailing window ending now.
func (s *SalesService) ListWindow(ctx context.Context, days int) ([]domain.SaleRecord, error) {
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	return s.sales.ListWindow(ctx, now.AddDate(0, 0, -days), now)
}

func (s *SalesService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("sales: analytics cache invalidation failed")
	}
}
