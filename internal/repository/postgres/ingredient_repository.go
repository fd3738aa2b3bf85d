// backend-go/internal/repository/postgres/ingredient_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository"
	"github.com/jmoiron/sqlx"
)

type ingredientRepository struct {
	db *DB
}

func NewIngredientRepository(db *DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) List(ctx context.Context) ([]domain.Ingredient, error) {
	query := `
		SELECT id, name, category, unit, cost_per_unit, current_stock,
		       min_stock, reorder_point, lead_time_days, expiry_date,
		       supplier, created_at, updated_at
		FROM ingredients
		ORDER BY name, id
	`

	var rows []domain.Ingredient
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error listing ingredients: %w", err)
	}

	return rows, nil
}

func (r *ingredientRepository) Get(ctx context.Context, id string) (*domain.Ingredient, error) {
	query := `
		SELECT id, name, category, unit, cost_per_unit, current_stock,
		       min_stock, reorder_point, lead_time_days, expiry_date,
		       supplier, created_at, updated_at
		FROM ingredients
		WHERE id = $1
	`

	var row domain.Ingredient
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("ingredient", id)
		}
		return nil, fmt.Errorf("error getting ingredient %s: %w", id, err)
	}

	return &row, nil
}

func (r *ingredientRepository) Upsert(ctx context.Context, rows []domain.Ingredient) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO ingredients (
			id, name, category, unit, cost_per_unit, current_stock,
			min_stock, reorder_point, lead_time_days, expiry_date, supplier,
			created_at, updated_at
		) VALUES (
			:id, :name, :category, :unit, :cost_per_unit, :current_stock,
			:min_stock, :reorder_point, :lead_time_days, :expiry_date, :supplier,
			now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			unit = EXCLUDED.unit,
			cost_per_unit = EXCLUDED.cost_per_unit,
			current_stock = EXCLUDED.current_stock,
			min_stock = EXCLUDED.min_stock,
			reorder_point = EXCLUDED.reorder_point,
			lead_time_days = EXCLUDED.lead_time_days,
			expiry_date = EXCLUDED.expiry_date,
			supplier = EXCLUDED.supplier,
			updated_at = now()
	`

	count := 0
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("error upserting ingredient %s: %w", row.ID, err)
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

func (r *ingredientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting ingredient %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("ingredient", id)
	}

	return nil
}
