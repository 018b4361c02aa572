package pipeline

import (
	"database/sql"
	"net/url"
	"strings"

	"landscape-api/internal/models"
	"landscape-api/internal/unsplash"
)

// RejectReason tags why a raw record was dropped so run statistics can
// distinguish bad data from data we already have.
type RejectReason string

const (
	ReasonMissingField      RejectReason = "missing_field"
	ReasonNotLandscape      RejectReason = "not_landscape"
	ReasonAspectRatioTooLow RejectReason = "aspect_ratio_too_low"
	ReasonResolutionTooLow  RejectReason = "resolution_too_low"
	ReasonDuplicateID       RejectReason = "duplicate_id"
)

// Validator applies the quality rules to raw photos and normalizes the
// survivors into ImageRecords.
type Validator struct {
	minWidth       int
	minAspectRatio float64
	locations      LocationExtractor
}

func NewValidator(minWidth int, minAspectRatio float64, locations LocationExtractor) *Validator {
	return &Validator{
		minWidth:       minWidth,
		minAspectRatio: minAspectRatio,
		locations:      locations,
	}
}

// Validate checks one raw photo against the quality rules in order and stops
// at the first failure. On success it returns the normalized record and an
// empty reason.
func (v *Validator) Validate(photo unsplash.Photo, query string) (*models.ImageRecord, RejectReason) {
	id := strings.TrimSpace(photo.ID)
	imageURL := strings.TrimSpace(photo.URLs.Regular)
	downloadURL := strings.TrimSpace(photo.URLs.Regular)
	photographer := strings.TrimSpace(photo.User.Name)

	if id == "" || photographer == "" || photo.Width == 0 || photo.Height == 0 {
		return nil, ReasonMissingField
	}
	if !isValidURL(imageURL) || !isValidURL(downloadURL) {
		return nil, ReasonMissingField
	}

	if photo.Width <= photo.Height {
		return nil, ReasonNotLandscape
	}

	ratio := float64(photo.Width) / float64(photo.Height)
	if ratio < v.minAspectRatio {
		return nil, ReasonAspectRatioTooLow
	}

	if photo.Width < v.minWidth {
		return nil, ReasonResolutionTooLow
	}

	description := collapseWhitespace(photo.Description)
	if description == "" {
		description = collapseWhitespace(photo.AltDescription)
	}

	locationName, country := v.resolveLocation(photo, description)

	return &models.ImageRecord{
		ID:                   id,
		ImageURL:             imageURL,
		DownloadURL:          downloadURL,
		PageURL:              nullString(strings.TrimSpace(photo.Links.HTML)),
		LocationName:         nullString(locationName),
		Country:              nullString(country),
		Description:          nullString(description),
		PhotographerName:     photographer,
		PhotographerUsername: nullString(strings.TrimSpace(photo.User.Username)),
		Width:                photo.Width,
		Height:               photo.Height,
		Color:                nullString(strings.TrimSpace(photo.Color)),
		Source:               models.SourceUnsplash,
		Query:                nullString(strings.TrimSpace(query)),
	}, ""
}

// resolveLocation prefers the structured upstream location; whatever is still
// missing is filled from the description heuristic. Failure to find anything
// leaves both fields empty and never rejects the record.
func (v *Validator) resolveLocation(photo unsplash.Photo, description string) (string, string) {
	locationName := strings.TrimSpace(photo.Location.Name)
	if locationName == "" {
		locationName = strings.TrimSpace(photo.Location.City)
	}
	country := strings.TrimSpace(photo.Location.Country)

	if (locationName == "" || country == "") && v.locations != nil {
		parsedLocation, parsedCountry := v.locations.Extract(description)
		if locationName == "" {
			locationName = parsedLocation
		}
		if country == "" {
			country = parsedCountry
		}
	}

	return locationName, country
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
