package models

import (
	"database/sql"
	"time"
)

// SourceUnsplash is the provider tag recorded on every curated image.
const SourceUnsplash = "unsplash"

// ImageRecord is a row in the images table. The ID always comes from the
// upstream provider and is never generated locally.
type ImageRecord struct {
	ID                   string
	ImageURL             string
	DownloadURL          string
	PageURL              sql.NullString
	LocationName         sql.NullString
	Country              sql.NullString
	Description          sql.NullString
	PhotographerName     string
	PhotographerUsername sql.NullString
	Width                int
	Height               int
	Color                sql.NullString
	Source               string
	Query                sql.NullString
	Downloaded           bool
	CreatedAt            time.Time
}

// HasLocation reports whether the record carries a usable location name.
// Records without one are excluded from location-guaranteed queries.
func (r *ImageRecord) HasLocation() bool {
	return r.LocationName.Valid && r.LocationName.String != ""
}

// Caption builds the display caption from whatever location data exists,
// "Lofoten Islands, Norway" when both parts are known.
func (r *ImageRecord) Caption() string {
	switch {
	case r.LocationName.Valid && r.Country.Valid:
		return r.LocationName.String + ", " + r.Country.String
	case r.Country.Valid:
		return r.Country.String
	case r.LocationName.Valid:
		return r.LocationName.String
	}
	return ""
}
