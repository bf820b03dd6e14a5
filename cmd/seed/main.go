package main

import (
	"fmt"
	"os"

	"github.com/ikkim/commerce-backend/config"
	"github.com/ikkim/commerce-backend/internal/db"
	"github.com/ikkim/commerce-backend/pkg/logger"
)

// One-shot loader: drops the whole schema, recreates it, and loads the fixed
// sample dataset. Destructive by design.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	skipConfirm := len(os.Args) > 1 && os.Args[1] == "--yes"
	if !skipConfirm {
		fmt.Printf("This will DROP all tables in %q and reload the sample data. Continue? (yes/no): ", cfg.Database.DBName)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := db.Reset(db.GetDB()); err != nil {
		logger.Fatal("Failed to reset schema", err)
	}

	if err := db.Seed(db.GetDB()); err != nil {
		logger.Fatal("Failed to seed sample data", err)
	}

	fmt.Println("Schema created and sample data loaded.")
}
