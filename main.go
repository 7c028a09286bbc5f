package main

import (
	"errors"
	"fmt"
	"os"

	"realestate-stats/config"
	"realestate-stats/models"
	"realestate-stats/services"
	"realestate-stats/storage"
	"realestate-stats/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)

	logger.Info("=== Real estate stats starting ===")
	logger.Info("Config: source: %s | classify: %s | queries: %v",
		cfg.DataSource, cfg.ClassifyMode, cfg.Queries)

	loader := services.NewLoader(logger, services.NewClassifier(cfg.ClassifyMode))
	collection, loadStats, err := load(cfg, logger, loader)
	if err != nil {
		var nf *services.FileNotFoundError
		if errors.As(err, &nf) {
			logger.Error("%v", err)
			logger.Error("Set DATA_DIR and DATA_FILE to a readable listings file and run again.")
		} else {
			logger.Error("Load failed: %v", err)
		}
		os.Exit(1)
	}

	printer := services.NewPrinter(os.Stdout)
	printer.PrintOverview(collection, loadStats, cfg.PreviewRows)

	stats := services.NewStats(services.NewQueryService(logger), collection, cfg.MaxConcurrency)
	params := services.StatsParams{
		Region:     cfg.QueryRegion,
		DealRegion: cfg.DealRegion,
		Bedrooms:   cfg.QueryBedrooms,
		Bathrooms:  cfg.QueryBathrooms,
		MaxBudget:  cfg.QueryMaxBudget,
	}

	fmt.Println("Computing stats:")
	for _, res := range stats.RunAll(cfg.Queries, params) {
		printer.PrintResult(res)
	}
}

func load(cfg *config.Config, logger *utils.Logger, loader *services.Loader) (*models.Collection, *services.LoadStats, error) {
	if cfg.DataSource != "postgres" {
		return loader.LoadFile(cfg.DataDir, cfg.DataFile, cfg.Delimiter())
	}

	reader, err := storage.NewPostgresReader(cfg.DSN(), cfg.ListingsTable, storage.PingRetry(cfg.MaxRetries, logger))
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	logger.Info("Reading listings from PostgreSQL table %q", cfg.ListingsTable)
	return loader.Load(reader)
}
