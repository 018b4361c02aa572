package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config collects every tunable of the pipeline and the serving API in one
// place. Values come from LANDSCAPE_* environment variables with the
// defaults below.
type Config struct {
	// Unsplash API
	UnsplashAccessKey string
	UnsplashBaseURL   string

	// Storage
	DatabasePath   string
	ImagesDir      string
	DownloadImages bool

	// Validation rules
	MinWidth       int
	MinAspectRatio float64

	// Collection settings
	TargetImageCount int
	ImagesPerQuery   int
	RateLimitDelay   time.Duration
	SearchQueries    []string

	// Server
	Port        string
	Environment string
	LogLevel    string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LANDSCAPE")
	v.AutomaticEnv()

	v.SetDefault("unsplash_access_key", "")
	v.SetDefault("unsplash_base_url", "https://api.unsplash.com")
	v.SetDefault("database_path", "db/images.db")
	v.SetDefault("images_dir", "data/images")
	v.SetDefault("download_images", false)
	v.SetDefault("min_width", 1920)
	v.SetDefault("min_aspect_ratio", 1.3)
	v.SetDefault("target_image_count", 300)
	v.SetDefault("images_per_query", 10)
	v.SetDefault("rate_limit_delay", 2*time.Second)
	v.SetDefault("search_queries", "")
	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	cfg := &Config{
		UnsplashAccessKey: v.GetString("unsplash_access_key"),
		UnsplashBaseURL:   v.GetString("unsplash_base_url"),
		DatabasePath:      v.GetString("database_path"),
		ImagesDir:         v.GetString("images_dir"),
		DownloadImages:    v.GetBool("download_images"),
		MinWidth:          v.GetInt("min_width"),
		MinAspectRatio:    v.GetFloat64("min_aspect_ratio"),
		TargetImageCount:  v.GetInt("target_image_count"),
		ImagesPerQuery:    v.GetInt("images_per_query"),
		RateLimitDelay:    v.GetDuration("rate_limit_delay"),
		SearchQueries:     splitQueries(v.GetString("search_queries")),
		Port:              v.GetString("port"),
		Environment:       v.GetString("environment"),
		LogLevel:          v.GetString("log_level"),
	}

	if len(cfg.SearchQueries) == 0 {
		cfg.SearchQueries = DefaultSearchQueries()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("LANDSCAPE_DATABASE_PATH is required")
	}
	if c.MinWidth <= 0 {
		return fmt.Errorf("LANDSCAPE_MIN_WIDTH must be positive")
	}
	if c.MinAspectRatio <= 0 {
		return fmt.Errorf("LANDSCAPE_MIN_ASPECT_RATIO must be positive")
	}
	if c.ImagesPerQuery <= 0 {
		return fmt.Errorf("LANDSCAPE_IMAGES_PER_QUERY must be positive")
	}
	if c.TargetImageCount <= 0 {
		return fmt.Errorf("LANDSCAPE_TARGET_IMAGE_COUNT must be positive")
	}
	return nil
}

// splitQueries parses a comma-separated LANDSCAPE_SEARCH_QUERIES override.
func splitQueries(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	queries := make([]string, 0, len(parts))
	for _, p := range parts {
		if q := strings.TrimSpace(p); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}
