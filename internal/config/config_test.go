package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.MinWidth)
	assert.Equal(t, 1.3, cfg.MinAspectRatio)
	assert.Equal(t, 300, cfg.TargetImageCount)
	assert.Equal(t, 10, cfg.ImagesPerQuery)
	assert.Equal(t, 2*time.Second, cfg.RateLimitDelay)
	assert.Equal(t, "db/images.db", cfg.DatabasePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.DefaultSearchQueries(), cfg.SearchQueries)
	assert.NotEmpty(t, cfg.SearchQueries)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LANDSCAPE_MIN_WIDTH", "2560")
	t.Setenv("LANDSCAPE_MIN_ASPECT_RATIO", "1.5")
	t.Setenv("LANDSCAPE_SEARCH_QUERIES", "glacier lake, sea cliffs ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2560, cfg.MinWidth)
	assert.Equal(t, 1.5, cfg.MinAspectRatio)
	assert.Equal(t, []string{"glacier lake", "sea cliffs"}, cfg.SearchQueries)
}

func TestValidate_RejectsNonsense(t *testing.T) {
	t.Setenv("LANDSCAPE_MIN_WIDTH", "-1")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANDSCAPE_MIN_WIDTH")
}

// A non-positive target would make an ingest run accept nothing and exit
// quietly, so it has to be rejected up front.
func TestValidate_RejectsZeroTarget(t *testing.T) {
	t.Setenv("LANDSCAPE_TARGET_IMAGE_COUNT", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANDSCAPE_TARGET_IMAGE_COUNT")
}
