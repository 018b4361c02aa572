package main

import (
	"go.uber.org/zap"

	"landscape-api/internal/config"
	"landscape-api/internal/database"
	"landscape-api/internal/logger"
	"landscape-api/internal/pipeline"
	"landscape-api/internal/unsplash"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment != "production")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.UnsplashAccessKey == "" {
		log.Fatal("LANDSCAPE_UNSPLASH_ACCESS_KEY is required for pipeline runs")
	}

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	source := unsplash.NewClient(cfg.UnsplashBaseURL, cfg.UnsplashAccessKey)
	validator := pipeline.NewValidator(cfg.MinWidth, cfg.MinAspectRatio, pipeline.NewGazetteerExtractor())
	dedupe := pipeline.NewDeduplicator()
	loader := pipeline.NewLoader(store, log)

	runner := pipeline.NewRunner(source, validator, dedupe, loader, cfg, log)
	stats := runner.Run()

	total, err := store.CountImages()
	if err != nil {
		log.Fatal("failed to verify store", zap.Error(err))
	}

	log.Info("store verified",
		zap.Int("total_images", total),
		zap.Int("run_inserted", stats.Load.Inserted),
		zap.Int("run_updated", stats.Load.Updated),
	)
}
