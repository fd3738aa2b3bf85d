package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/cache"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/importer"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/urfave/cli/v2"
)

// seedServices bundles the import-facing services wired against the CLI
// database connection. The seeder never talks to Redis, so the services get
// the noop cache.
type seedServices struct {
	inventory *service.InventoryService
	menu      *service.MenuService
	sales     *service.SalesService
}

func newSeedServices(c *cli.Context) (*seedServices, error) {
	db, ok := c.Context.Value(dbKey).(*postgres.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not found in context")
	}

	ingredientRepo := postgres.NewIngredientRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	salesRepo := postgres.NewSalesRepository(db)
	noop := cache.NewNoopAnalyticsCache()

	return &seedServices{
		inventory: service.NewInventoryService(ingredientRepo, noop),
		menu:      service.NewMenuService(menuRepo, ingredientRepo, noop),
		sales:     service.NewSalesService(salesRepo, menuRepo, noop),
	}, nil
}

func policyFromFlag(c *cli.Context) (service.ImportPolicy, error) {
	raw := c.String("policy")
	policy, ok := service.ParseImportPolicy(raw)
	if !ok {
		return "", fmt.Errorf("unknown policy %q", raw)
	}
	return policy, nil
}

func openBatch(c *cli.Context, filename string) (*os.File, string, error) {
	path := filepath.Join(c.String("data-dir"), filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

func logReport(batch string, report *domain.ImportReport, parseErrs []*domain.ValidationError) {
	report.Skipped += len(parseErrs)
	for _, verr := range parseErrs {
		report.Errors = append(report.Errors, verr.Error())
	}

	log.Printf("%s: imported %d row(s), skipped %d", batch, report.Imported, report.Skipped)
	for _, msg := range report.Errors {
		log.Printf("%s: %s", batch, msg)
	}
}

func runIngredients(c *cli.Context) error {
	svcs, err := newSeedServices(c)
	if err != nil {
		return err
	}
	policy, err := policyFromFlag(c)
	if err != nil {
		return err
	}

	f, path, err := openBatch(c, "ingredients.csv")
	if err != nil {
		return fmt.Errorf("could not open ingredients batch: %w", err)
	}
	defer f.Close()

	log.Printf("Importing ingredients from %s", path)
	rows, parseErrs, err := importer.ParseIngredients(f)
	if err != nil {
		return err
	}
	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		return fmt.Errorf("ingredients batch rejected: %d unparseable row(s), first: %v", len(parseErrs), parseErrs[0])
	}

	report, err := svcs.inventory.Import(c.Context, rows, policy)
	if err != nil {
		return err
	}

	logReport("ingredients", report, parseErrs)
	return nil
}

func runMenuItems(c *cli.Context) error {
	svcs, err := newSeedServices(c)
	if err != nil {
		return err
	}
	policy, err := policyFromFlag(c)
	if err != nil {
		return err
	}

	f, path, err := openBatch(c, "menu_items.csv")
	if err != nil {
		return fmt.Errorf("could not open menu items batch: %w", err)
	}
	defer f.Close()

	log.Printf("Importing menu items from %s", path)
	rows, parseErrs, err := importer.ParseMenuItems(f)
	if err != nil {
		return err
	}
	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		return fmt.Errorf("menu items batch rejected: %d unparseable row(s), first: %v", len(parseErrs), parseErrs[0])
	}

	report, err := svcs.menu.ImportItems(c.Context, rows, policy)
	if err != nil {
		return err
	}

	logReport("menu items", report, parseErrs)
	return nil
}

func runRecipes(c *cli.Context) error {
	svcs, err := newSeedServices(c)
	if err != nil {
		return err
	}
	policy, err := policyFromFlag(c)
	if err != nil {
		return err
	}

	f, path, err := openBatch(c, "recipes.csv")
	if err != nil {
		return fmt.Errorf("could not open recipes batch: %w", err)
	}
	defer f.Close()

	log.Printf("Importing recipe lines from %s", path)
	rows, parseErrs, err := importer.ParseRecipes(f)
	if err != nil {
		return err
	}
	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		return fmt.Errorf("recipes batch rejected: %d unparseable row(s), first: %v", len(parseErrs), parseErrs[0])
	}

	report, err := svcs.menu.ImportRecipes(c.Context, rows, policy)
	if err != nil {
		return err
	}

	logReport("recipes", report, parseErrs)
	return nil
}

func runSales(c *cli.Context) error {
	svcs, err := newSeedServices(c)
	if err != nil {
		return err
	}
	policy, err := policyFromFlag(c)
	if err != nil {
		return err
	}

	f, path, err := openBatch(c, "sales.csv")
	if err != nil {
		return fmt.Errorf("could not open sales batch: %w", err)
	}
	defer f.Close()

	log.Printf("Importing sale records from %s", path)
	rows, parseErrs, err := importer.ParseSales(f)
	if err != nil {
		return err
	}
	if policy == service.PolicyRejectBatch && len(parseErrs) > 0 {
		return fmt.Errorf("sales batch rejected: %d unparseable row(s), first: %v", len(parseErrs), parseErrs[0])
	}

	report, err := svcs.sales.Record(c.Context, rows, policy)
	if err != nil {
		return err
	}

	logReport("sales", report, parseErrs)
	return nil
}

// runAll imports every batch in dependency order: master data first, then
// recipe lines referencing it, then sales history. A missing batch file is
// skipped with a log line so partial data drops still seed.
func runAll(c *cli.Context) error {
	steps := []struct {
		name string
		file string
		run  func(*cli.Context) error
	}{
		{"ingredients", "ingredients.csv", runIngredients},
		{"menu items", "menu_items.csv", runMenuItems},
		{"recipes", "recipes.csv", runRecipes},
		{"sales", "sales.csv", runSales},
	}

	for _, step := range steps {
		path := filepath.Join(c.String("data-dir"), step.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("No %s batch at %s, skipping", step.name, path)
			continue
		}
		if err := step.run(c); err != nil {
			return fmt.Errorf("%s import failed: %w", step.name, err)
		}
	}

	return nil
}
