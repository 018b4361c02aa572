package pipeline

import (
	"go.uber.org/zap"

	"landscape-api/internal/models"
)

// ImageStore is the slice of the curated store the loader needs.
type ImageStore interface {
	UpsertImage(img *models.ImageRecord) (inserted bool, err error)
}

// LoadSummary reports the outcome of one load batch.
type LoadSummary struct {
	Inserted int
	Updated  int
	Failed   int
}

// Loader upserts validated records into the curated store. Re-running the
// pipeline over overlapping search results updates rows in place instead of
// failing on the primary key.
type Loader struct {
	store ImageStore
	log   *zap.Logger
}

func NewLoader(store ImageStore, log *zap.Logger) *Loader {
	return &Loader{store: store, log: log}
}

// Load writes the batch one record at a time. A storage failure on one
// record is counted and logged with its id; the rest of the batch proceeds.
func (l *Loader) Load(records []*models.ImageRecord) LoadSummary {
	var summary LoadSummary

	for _, rec := range records {
		inserted, err := l.store.UpsertImage(rec)
		if err != nil {
			summary.Failed++
			l.log.Error("failed to load image",
				zap.String("id", rec.ID),
				zap.Error(err),
			)
			continue
		}

		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}

	return summary
}
