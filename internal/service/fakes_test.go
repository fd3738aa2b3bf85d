package service

import (
	"context"
	"sort"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// In-memory repository fakes backing the service tests. Upserts are keyed
// by business id, matching the persistence layer's conflict handling.

type fakeIngredientRepo struct {
	rows map[string]domain.Ingredient
}

func newFakeIngredientRepo(rows ...domain.Ingredient) *fakeIngredientRepo {
	repo := &fakeIngredientRepo{rows: make(map[string]domain.Ingredient)}
	for _, row := range rows {
		repo.rows[row.ID] = row
	}
	return repo
}

func (r *fakeIngredientRepo) List(ctx context.Context) ([]domain.Ingredient, error) {
	out := make([]domain.Ingredient, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeIngredientRepo) Get(ctx context.Context, id string) (*domain.Ingredient, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.NewNotFoundError("ingredient", id)
	}
	return &row, nil
}

func (r *fakeIngredientRepo) Upsert(ctx context.Context, rows []domain.Ingredient) (int, error) {
	for _, row := range rows {
		r.rows[row.ID] = row
	}
	return len(rows), nil
}

func (r *fakeIngredientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return domain.NewNotFoundError("ingredient", id)
	}
	delete(r.rows, id)
	return nil
}

type fakeMenuRepo struct {
	items   map[string]domain.MenuItem
	recipes map[string]domain.RecipeLine
}

func newFakeMenuRepo(items ...domain.MenuItem) *fakeMenuRepo {
	repo := &fakeMenuRepo{
		items:   make(map[string]domain.MenuItem),
		recipes: make(map[string]domain.RecipeLine),
	}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeMenuRepo) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMenuRepo) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("menu item", id)
	}
	return &item, nil
}

func (r *fakeMenuRepo) UpsertItems(ctx context.Context, rows []domain.MenuItem) (int, error) {
	for _, row := range rows {
		r.items[row.ID] = row
	}
	return len(rows), nil
}

func (r *fakeMenuRepo) DeleteItem(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.NewNotFoundError("menu item", id)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) ListRecipes(ctx context.Context) ([]domain.RecipeLine, error) {
	out := make([]domain.RecipeLine, 0, len(r.recipes))
	for _, line := range r.recipes {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMenuRepo) ListRecipesForItem(ctx context.Context, menuItemID string) ([]domain.RecipeLine, error) {
	out := make([]domain.RecipeLine, 0)
	for _, line := range r.recipes {
		if line.MenuItemID == menuItemID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMenuRepo) UpsertRecipes(ctx context.Context, rows []domain.RecipeLine) (int, error) {
	for _, row := range rows {
		r.recipes[row.ID] = row
	}
	return len(rows), nil
}

type fakeSalesRepo struct {
	records []domain.SaleRecord
}

func (r *fakeSalesRepo) ListWindow(ctx context.Context, from, to time.Time) ([]domain.SaleRecord, error) {
	out := make([]domain.SaleRecord, 0, len(r.records))
	for _, record := range r.records {
		if record.Timestamp.Before(from) || record.Timestamp.After(to) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeSalesRepo) Insert(ctx context.Context, records []domain.SaleRecord) (int, error) {
	r.records = append(r.records, records...)
	return len(records), nil
}

// memoryCache stores payloads in the test process and counts invalidations
// so tests can assert that writes bust the analytics cache.
type memoryCache struct {
	dashboard     *domain.AnalyticsDashboard
	procurement   []domain.ProcurementItem
	invalidations int
}

func (c *memoryCache) GetDashboard(ctx context.Context) (*domain.AnalyticsDashboard, bool, error) {
	return c.dashboard, c.dashboard != nil, nil
}

func (c *memoryCache) SetDashboard(ctx context.Context, dashboard *domain.AnalyticsDashboard) error {
	c.dashboard = dashboard
	return nil
}

func (c *memoryCache) GetProcurement(ctx context.Context) ([]domain.ProcurementItem, bool, error) {
	return c.procurement, c.procurement != nil, nil
}

func (c *memoryCache) SetProcurement(ctx context.Context, items []domain.ProcurementItem) error {
	c.procurement = items
	return nil
}

func (c *memoryCache) InvalidateAll(ctx context.Context) error {
	c.invalidations++
	c.dashboard = nil
	c.procurement = nil
	return nil
}
