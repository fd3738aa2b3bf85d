package main

import (
	"context"
	"log"
	"os"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type ctxKey string

const dbKey ctxKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory containing CSV batches",
		Value:   "./data/seeds",
		EnvVars: []string{"SEED_DATA_DIR"},
	}
}

func newPolicyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "policy",
		Usage: "Batch failure policy: skip_invalid or reject_batch",
		Value: "skip_invalid",
	}
}

func initDB(c *cli.Context) error {
	db, err := postgres.NewDBFromURL("pgx", c.String("db-url"))
	if err != nil {
		return err
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*postgres.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func importFlags() []cli.Flag {
	return []cli.Flag{
		newDBURLFlag(),
		newDataDirFlag(),
		newPolicyFlag(),
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Import café master data and sales history from CSV batches",
		Commands: []*cli.Command{
			{
				Name:   "ingredients",
				Usage:  "Import ingredient rows from ingredients.csv",
				Flags:  importFlags(),
				Before: initDB,
				After:  closeDB,
				Action: runIngredients,
			},
			{
				Name:   "menu",
				Usage:  "Import menu item rows from menu_items.csv",
				Flags:  importFlags(),
				Before: initDB,
				After:  closeDB,
				Action: runMenuItems,
			},
			{
				Name:   "recipes",
				Usage:  "Import recipe lines from recipes.csv",
				Flags:  importFlags(),
				Before: initDB,
				After:  closeDB,
				Action: runRecipes,
			},
			{
				Name:   "sales",
				Usage:  "Import sale records from sales.csv",
				Flags:  importFlags(),
				Before: initDB,
				After:  closeDB,
				Action: runSales,
			},
			{
				Name:   "all",
				Usage:  "Import every batch in dependency order",
				Flags:  importFlags(),
				Before: initDB,
				After:  closeDB,
				Action: runAll,
			},
			newDownloadCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
