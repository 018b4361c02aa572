package pipeline_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"landscape-api/internal/models"
	"landscape-api/internal/pipeline"
)

type fakeStore struct {
	existing map[string]bool
	failIDs  map[string]bool
	upserts  int
}

func (f *fakeStore) UpsertImage(img *models.ImageRecord) (bool, error) {
	if f.failIDs[img.ID] {
		return false, errors.New("constraint violation")
	}
	f.upserts++
	if f.existing[img.ID] {
		return false, nil
	}
	if f.existing == nil {
		f.existing = make(map[string]bool)
	}
	f.existing[img.ID] = true
	return true, nil
}

func record(id string) *models.ImageRecord {
	return &models.ImageRecord{
		ID:               id,
		ImageURL:         "https://images.unsplash.com/photo-" + id,
		DownloadURL:      "https://images.unsplash.com/photo-" + id,
		PhotographerName: "Jane Doe",
		Width:            2560,
		Height:           1440,
		Source:           models.SourceUnsplash,
	}
}

func TestLoader_InsertAndUpdate(t *testing.T) {
	store := &fakeStore{existing: map[string]bool{"old": true}}
	loader := pipeline.NewLoader(store, zap.NewNop())

	summary := loader.Load([]*models.ImageRecord{record("old"), record("new1"), record("new2")})

	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Failed)
}

func TestLoader_FailureDoesNotAbortBatch(t *testing.T) {
	store := &fakeStore{failIDs: map[string]bool{"bad": true}}
	loader := pipeline.NewLoader(store, zap.NewNop())

	summary := loader.Load([]*models.ImageRecord{record("a"), record("bad"), record("b")})

	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, store.upserts)
}
