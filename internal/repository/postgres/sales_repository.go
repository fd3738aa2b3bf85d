// backend-go/internal/repository/postgres/sales_repository.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
	"github.com/jmoiron/sqlx"
)

type salesRepository struct {
	db *DB
}

func NewSalesRepository(db *DB) repository.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) ListWindow(ctx context.Context, from, to time.Time) ([]domain.SaleRecord, error) {
	query := `
		SELECT id, sold_at, menu_item_id, quantity_sold
		FROM sale_records
		WHERE sold_at >= $1 AND sold_at <= $2
		ORDER BY sold_at
	`

	var rows []domain.SaleRecord
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("error listing sales between %s and %s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}

	return rows, nil
}

func (r *salesRepository) Insert(ctx context.Context, records []domain.SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO sale_records (sold_at, menu_item_id, quantity_sold)
		VALUES (:sold_at, :menu_item_id, :quantity_sold)
	`

	count := 0
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, record := range records {
			if _, err := tx.NamedExecContext(ctx, query, record); err != nil {
				return fmt.Errorf("error inserting sale for menu item %s: %w", record.MenuItemID, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
