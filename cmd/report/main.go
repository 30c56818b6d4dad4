package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/evalhub/evalcycle-backend/internal/data/repos"
	"github.com/evalhub/evalcycle-backend/internal/db"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
	"github.com/evalhub/evalcycle-backend/internal/reporting"
)

func main() {
	cycleFlag := flag.String("cycle", "", "evaluation cycle id (uuid)")
	outFlag := flag.String("out", "", "output path; defaults to the generated report file name")
	flag.Parse()

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

	cycleID, err := uuid.Parse(*cycleFlag)
	if err != nil {
		log.Error("Invalid -cycle flag", "value", *cycleFlag, "error", err)
		os.Exit(2)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	repoSet := repos.NewSet(thePG, log)
	exporter := reporting.NewExporter(thePG, log, repoSet)

	f, name, err := exporter.BuildCycleReport(context.Background(), cycleID)
	if err != nil {
		log.Error("Report build failed", "cycle_id", cycleID, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	out := *outFlag
	if out == "" {
		out = name
	}
	if err := f.SaveAs(out); err != nil {
		log.Error("Report save failed", "path", out, "error", err)
		os.Exit(1)
	}
	log.Info("Report written", "path", out)
}
