package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"landscape-api/internal/config"
	"landscape-api/internal/database"
	"landscape-api/internal/handlers"
	"landscape-api/internal/logger"
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

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	imagesHandler := handlers.NewImagesHandler(store, log)
	statsHandler := handlers.NewStatsHandler(store, log)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Read-only API served to browser frontends.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
		MaxAge:       24 * time.Hour,
	}))

	api := router.Group("/api")
	api.GET("/random", imagesHandler.GetRandom)
	api.GET("/random/location", imagesHandler.GetRandomWithLocation)
	api.GET("/stats", statsHandler.GetStats)
	api.GET("/health", handlers.HealthHandler)

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.DatabasePath),
	)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("server interrupted", zap.Error(err))
	}
}
