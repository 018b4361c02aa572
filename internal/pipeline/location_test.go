package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"landscape-api/internal/pipeline"
)

func TestGazetteerExtract(t *testing.T) {
	g := pipeline.NewGazetteerExtractor()

	tests := []struct {
		text     string
		location string
		country  string
	}{
		{"Sunset over Lofoten Islands, Norway", "Lofoten Islands", "Norway"},
		{"misty morning at yosemite", "Yosemite Valley", ""},
		{"a road trip through iceland", "", "Iceland"},
		{"canoe on moraine lake in canada", "Moraine Lake", "Canada"},
		{"somewhere in utah", "", "United States"},
		{"an unremarkable forest", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		location, country := g.Extract(tt.text)
		assert.Equal(t, tt.location, location, "location for %q", tt.text)
		assert.Equal(t, tt.country, country, "country for %q", tt.text)
	}
}

func TestGazetteerExtract_LandmarkBeatsCountryOnly(t *testing.T) {
	g := pipeline.NewGazetteerExtractor()

	// Both a landmark and a country match; the landmark keeps its country.
	location, country := g.Extract("skogafoss waterfall, iceland")
	assert.Equal(t, "Skógafoss", location)
	assert.Equal(t, "Iceland", country)
}
