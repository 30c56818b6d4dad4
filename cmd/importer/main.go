package main

import (
	"context"
	"fmt"
	"os"

	"github.com/evalhub/evalcycle-backend/internal/data/repos"
	"github.com/evalhub/evalcycle-backend/internal/db"
	"github.com/evalhub/evalcycle-backend/internal/ingestion/criteria"
	"github.com/evalhub/evalcycle-backend/internal/ingestion/pipeline"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	paths := os.Args[1:]
	if len(paths) == 0 {
		log.Error("No workbooks given", "usage", "importer <file.xlsx> [file.xlsx ...]")
		os.Exit(2)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	ctx := context.Background()
	if err := criteria.Seed(ctx, thePG); err != nil {
		log.Error("Criterion catalogue seed failed", "error", err)
		os.Exit(1)
	}

	// Repos + importer
	log.Info("Setting up Repos from main...")
	repoSet := repos.NewSet(thePG, log)
	importer := pipeline.NewImporter(thePG, log, repoSet, criteria.Load(log))

	outcome, err := importer.ImportAll(ctx, paths)
	if err != nil {
		log.Error("Bulk import failed", "error", err)
		os.Exit(1)
	}

	log.Info("Bulk import finished",
		"files", len(outcome.Files),
		"files_failed", outcome.FilesFailed,
		"self_cards", outcome.TotalSelfCards(),
		"nominations", outcome.TotalNominations())
	if outcome.FilesFailed > 0 {
		os.Exit(1)
	}
}
