// backend-go/internal/repository/postgres/menu_repository.go
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

type menuRepository struct {
	db *DB
}

func NewMenuRepository(db *DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, category, sales_price, tax_rate, created_at, updated_at
		FROM menu_items
		ORDER BY name, id
	`

	var rows []domain.MenuItem
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error listing menu items: %w", err)
	}

	return rows, nil
}

func (r *menuRepository) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, category, sales_price, tax_rate, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	var row domain.MenuItem
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("menu item", id)
		}
		return nil, fmt.Errorf("error getting menu item %s: %w", id, err)
	}

	return &row, nil
}

func (r *menuRepository) UpsertItems(ctx context.Context, rows []domain.MenuItem) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO menu_items (id, name, category, sales_price, tax_rate, created_at, updated_at)
		VALUES (:id, :name, :category, :sales_price, :tax_rate, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			sales_price = EXCLUDED.sales_price,
			tax_rate = EXCLUDED.tax_rate,
			updated_at = now()
	`

	count := 0
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("error upserting menu item %s: %w", row.ID, err)
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

func (r *menuRepository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting menu item %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("menu item", id)
	}

	return nil
}

func (r *menuRepository) ListRecipes(ctx context.Context) ([]domain.RecipeLine, error) {
	query := `
		SELECT id, menu_item_id, ingredient_id, quantity
		FROM recipe_lines
		ORDER BY menu_item_id, ingredient_id
	`

	var rows []domain.RecipeLine
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	return rows, nil
}

func (r *menuRepository) ListRecipesForItem(ctx context.Context, menuItemID string) ([]domain.RecipeLine, error) {
	query := `
		SELECT id, menu_item_id, ingredient_id, quantity
		FROM recipe_lines
		WHERE menu_item_id = $1
		ORDER BY ingredient_id
	`

	var rows []domain.RecipeLine
	if err := r.db.SelectContext(ctx, &rows, query, menuItemID); err != nil {
		return nil, fmt.Errorf("error listing recipes for menu item %s: %w", menuItemID, err)
	}

	return rows, nil
}

func (r *menuRepository) UpsertRecipes(ctx context.Context, rows []domain.RecipeLine) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	// Keyed by (menu_item_id, ingredient_id) as well as business id, so an
	// identical re-import never duplicates a recipe line.
	query := `
		INSERT INTO recipe_lines (id, menu_item_id, ingredient_id, quantity)
		VALUES (:id, :menu_item_id, :ingredient_id, :quantity)
		ON CONFLICT (menu_item_id, ingredient_id) DO UPDATE SET
			quantity = EXCLUDED.quantity
	`

	count := 0
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("error upserting recipe line %s: %w", row.ID, err)
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
