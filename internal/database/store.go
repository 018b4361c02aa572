package database

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"landscape-api/internal/models"
)

const imageColumns = `id, image_url, download_url, page_url, location_name, country,
	description, photographer_name, photographer_username, width, height, color,
	source, query, downloaded, created_at`

// Store is the curated image store. Writes happen only during offline
// pipeline runs, reads only while serving, so no locking beyond SQLite's own
// is needed.
type Store struct {
	db *sql.DB
}

// UpsertImage inserts a record or, when the id already exists, overwrites
// every field except created_at. It reports whether a new row was created.
func (s *Store) UpsertImage(img *models.ImageRecord) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM images WHERE id = ?)`, img.ID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check image %s: %w", img.ID, err)
	}

	createdAt := img.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.Exec(`
		INSERT INTO images (`+imageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			image_url = excluded.image_url,
			download_url = excluded.download_url,
			page_url = excluded.page_url,
			location_name = excluded.location_name,
			country = excluded.country,
			description = excluded.description,
			photographer_name = excluded.photographer_name,
			photographer_username = excluded.photographer_username,
			width = excluded.width,
			height = excluded.height,
			color = excluded.color,
			source = excluded.source,
			query = excluded.query,
			downloaded = excluded.downloaded
	`, img.ID, img.ImageURL, img.DownloadURL, img.PageURL, img.LocationName,
		img.Country, img.Description, img.PhotographerName, img.PhotographerUsername,
		img.Width, img.Height, img.Color, img.Source, img.Query, img.Downloaded,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("failed to upsert image %s: %w", img.ID, err)
	}

	return !exists, nil
}

// GetRandomImage selects one record uniformly at random from the whole
// store. ORDER BY RANDOM() scans the table; fine at a few hundred rows, a
// reservoir sample or indexed offset would be needed well beyond that.
func (s *Store) GetRandomImage() (*models.ImageRecord, error) {
	row := s.db.QueryRow(`
		SELECT ` + imageColumns + `
		FROM images
		ORDER BY RANDOM()
		LIMIT 1
	`)
	return scanImage(row)
}

// GetRandomImageWithLocation selects uniformly from the location-bearing
// subset directly. Resampling GetRandomImage until a location shows up would
// be unbounded and non-uniform under sparse coverage.
func (s *Store) GetRandomImageWithLocation() (*models.ImageRecord, error) {
	row := s.db.QueryRow(`
		SELECT ` + imageColumns + `
		FROM images
		WHERE location_name IS NOT NULL
		ORDER BY RANDOM()
		LIMIT 1
	`)
	return scanImage(row)
}

// GetStats returns aggregate counts over the store. An empty store yields
// zeros, including the coverage percentage.
func (s *Store) GetStats() (*models.StatsData, error) {
	stats := &models.StatsData{TopCountries: []models.CountryCount{}}

	err := s.db.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&stats.TotalImages)
	if err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}

	err = s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE location_name IS NOT NULL`).Scan(&stats.WithLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to count images with location: %w", err)
	}

	err = s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE country IS NOT NULL`).Scan(&stats.WithCountry)
	if err != nil {
		return nil, fmt.Errorf("failed to count images with country: %w", err)
	}

	if stats.TotalImages > 0 {
		coverage := float64(stats.WithLocation) / float64(stats.TotalImages) * 100
		stats.LocationCoveragePercent = math.Round(coverage*10) / 10
	}

	rows, err := s.db.Query(`
		SELECT country, COUNT(*) AS count
		FROM images
		WHERE country IS NOT NULL
		GROUP BY country
		ORDER BY count DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc models.CountryCount
		if err := rows.Scan(&cc.Country, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan country count: %w", err)
		}
		stats.TopCountries = append(stats.TopCountries, cc)
	}

	return stats, rows.Err()
}

// CountImages returns the number of stored records.
func (s *Store) CountImages() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanImage(row *sql.Row) (*models.ImageRecord, error) {
	var img models.ImageRecord
	var createdAt string

	err := row.Scan(
		&img.ID, &img.ImageURL, &img.DownloadURL, &img.PageURL, &img.LocationName,
		&img.Country, &img.Description, &img.PhotographerName, &img.PhotographerUsername,
		&img.Width, &img.Height, &img.Color, &img.Source, &img.Query,
		&img.Downloaded, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan image: %w", err)
	}

	// created_at is always written as RFC3339; a row that fails to parse
	// is corrupt and worth surfacing rather than serving a zero time.
	img.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for image %s: %w", img.ID, err)
	}

	return &img, nil
}
