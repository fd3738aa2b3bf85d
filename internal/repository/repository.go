// backend-go/internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// IngredientRepository owns ingredient rows. Upserts are keyed by business
// id so re-importing an identical batch is a no-op.
type IngredientRepository interface {
	List(ctx context.Context) ([]domain.Ingredient, error)
	Get(ctx context.Context, id string) (*domain.Ingredient, error)
	Upsert(ctx context.Context, rows []domain.Ingredient) (int, error)
	Delete(ctx context.Context, id string) error
}

// MenuRepository owns menu items and their recipe lines.
type MenuRepository interface {
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
	UpsertItems(ctx context.Context, rows []domain.MenuItem) (int, error)
	DeleteItem(ctx context.Context, id string) error
	ListRecipes(ctx context.Context) ([]domain.RecipeLine, error)
	ListRecipesForItem(ctx context.Context, menuItemID string) ([]domain.RecipeLine, error)
	UpsertRecipes(ctx context.Context, rows []domain.RecipeLine) (int, error)
}

// SalesRepository owns sale records.
type SalesRepository interface {
	ListWindow(ctx context.Context, from, to time.Time) ([]domain.SaleRecord, error)
	Insert(ctx context.Context, records []domain.SaleRecord) (int, error)
}
