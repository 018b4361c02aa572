package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"landscape-api/internal/config"
	"landscape-api/internal/models"
	"landscape-api/internal/unsplash"
)

// Source is the external photo-search collaborator.
type Source interface {
	SearchPhotos(query string, page, perPage int) ([]unsplash.Photo, error)
	DownloadPhoto(downloadURL string) ([]byte, error)
}

// RunStats is the outcome of one pipeline run. Duplicates are kept apart
// from quality rejections so the pass rate distinguishes "bad data" from
// "already have it".
type RunStats struct {
	Fetched    int
	Accepted   int
	Duplicates int
	Rejected   map[RejectReason]int
	Load       LoadSummary
}

// RejectedTotal sums the quality rejections, excluding duplicates.
func (s *RunStats) RejectedTotal() int {
	total := 0
	for _, n := range s.Rejected {
		total += n
	}
	return total
}

// PassRate is the fraction of fetched records that made it into the store,
// as a percentage.
func (s *RunStats) PassRate() float64 {
	if s.Fetched == 0 {
		return 0
	}
	stored := s.Load.Inserted + s.Load.Updated
	return float64(stored) / float64(s.Fetched) * 100
}

// Runner drives one sequential ingest run: pull a page per query, validate,
// deduplicate, optionally download the asset, then load the batch. There is
// no concurrency; one upstream call is in flight at a time.
type Runner struct {
	source    Source
	validator *Validator
	dedupe    *Deduplicator
	loader    *Loader
	cfg       *config.Config
	log       *zap.Logger
}

func NewRunner(source Source, validator *Validator, dedupe *Deduplicator, loader *Loader, cfg *config.Config, log *zap.Logger) *Runner {
	return &Runner{
		source:    source,
		validator: validator,
		dedupe:    dedupe,
		loader:    loader,
		cfg:       cfg,
		log:       log,
	}
}

// Run processes the configured queries until the target count is reached or
// the queries run out. A failed query is logged and skipped; partial results
// beat none.
func (r *Runner) Run() *RunStats {
	stats := &RunStats{Rejected: make(map[RejectReason]int)}
	var accepted []*models.ImageRecord

	r.log.Info("starting ingest run",
		zap.Int("target", r.cfg.TargetImageCount),
		zap.Int("queries", len(r.cfg.SearchQueries)),
	)

	for i, query := range r.cfg.SearchQueries {
		if len(accepted) >= r.cfg.TargetImageCount {
			break
		}

		if i > 0 && r.cfg.RateLimitDelay > 0 {
			time.Sleep(r.cfg.RateLimitDelay)
		}

		photos, err := r.source.SearchPhotos(query, 1, r.cfg.ImagesPerQuery)
		if err != nil {
			r.log.Warn("search failed, skipping query",
				zap.String("query", query),
				zap.Error(err),
			)
			continue
		}

		for _, photo := range photos {
			stats.Fetched++

			rec, reason := r.validator.Validate(photo, query)
			if reason != "" {
				stats.Rejected[reason]++
				continue
			}

			if r.dedupe.IsDuplicate(rec.ID) {
				stats.Duplicates++
				continue
			}
			r.dedupe.Record(rec.ID)

			if r.cfg.DownloadImages {
				r.downloadAsset(rec)
			}

			accepted = append(accepted, rec)
			stats.Accepted++

			if len(accepted) >= r.cfg.TargetImageCount {
				break
			}
		}
	}

	stats.Load = r.loader.Load(accepted)
	r.logSummary(stats, accepted)

	return stats
}

// downloadAsset fetches the binary and flips the downloaded flag. A download
// failure never drops the record; the API serves URLs either way.
func (r *Runner) downloadAsset(rec *models.ImageRecord) {
	data, err := r.source.DownloadPhoto(rec.DownloadURL)
	if err != nil {
		r.log.Warn("failed to download image",
			zap.String("id", rec.ID),
			zap.Error(err),
		)
		return
	}

	if err := os.MkdirAll(r.cfg.ImagesDir, 0o755); err != nil {
		r.log.Warn("failed to create images directory", zap.Error(err))
		return
	}

	path := filepath.Join(r.cfg.ImagesDir, rec.ID+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		r.log.Warn("failed to write image file",
			zap.String("id", rec.ID),
			zap.Error(err),
		)
		return
	}

	rec.Downloaded = true
}

func (r *Runner) logSummary(stats *RunStats, accepted []*models.ImageRecord) {
	withLocation := 0
	for _, rec := range accepted {
		if rec.HasLocation() {
			withLocation++
		}
	}

	fields := []zap.Field{
		zap.Int("fetched", stats.Fetched),
		zap.Int("accepted", stats.Accepted),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("distinct_ids", r.dedupe.Seen()),
		zap.Int("inserted", stats.Load.Inserted),
		zap.Int("updated", stats.Load.Updated),
		zap.Int("failed", stats.Load.Failed),
		zap.String("pass_rate", fmt.Sprintf("%.1f%%", stats.PassRate())),
	}
	for reason, count := range stats.Rejected {
		fields = append(fields, zap.Int("rejected_"+string(reason), count))
	}
	if stats.Accepted > 0 {
		coverage := float64(withLocation) / float64(stats.Accepted) * 100
		fields = append(fields, zap.String("location_coverage", fmt.Sprintf("%d/%d (%.1f%%)", withLocation, stats.Accepted, coverage)))
	}

	r.log.Info("ingest run complete", fields...)
}
