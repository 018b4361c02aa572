package unsplash_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape-api/internal/unsplash"
)

const searchBody = `{
	"total": 1,
	"total_pages": 1,
	"results": [
		{
			"id": "abc123",
			"width": 2560,
			"height": 1440,
			"color": "#0c2636",
			"description": "Sunset over Lofoten Islands, Norway",
			"alt_description": "mountains by the sea",
			"urls": {"regular": "https://images.unsplash.com/photo-abc123"},
			"links": {"html": "https://unsplash.com/photos/abc123"},
			"user": {"name": "Jane Doe", "username": "janedoe"},
			"location": {"name": "Lofoten", "country": "Norway"}
		}
	]
}`

func TestSearchPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "glacier lake", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		assert.Equal(t, "test-key", r.URL.Query().Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	}))
	defer server.Close()

	client := unsplash.NewClient(server.URL, "test-key")
	photos, err := client.SearchPhotos("glacier lake", 1, 10)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	photo := photos[0]
	assert.Equal(t, "abc123", photo.ID)
	assert.Equal(t, 2560, photo.Width)
	assert.Equal(t, 1440, photo.Height)
	assert.Equal(t, "https://images.unsplash.com/photo-abc123", photo.URLs.Regular)
	assert.Equal(t, "Jane Doe", photo.User.Name)
	assert.Equal(t, "Norway", photo.Location.Country)
}

func TestSearchPhotos_UpstreamError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Invalid access token"))
	}))
	defer server.Close()

	client := unsplash.NewClient(server.URL, "test-key")
	_, err := client.SearchPhotos("glacier lake", 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	// Auth failures do not heal; no point in retrying them.
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSearchPhotos_RetriesTransientFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	}))
	defer server.Close()

	client := unsplash.NewClient(server.URL, "test-key")
	photos, err := client.SearchPhotos("glacier lake", 1, 10)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "abc123", photos[0].ID)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDownloadPhoto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	client := unsplash.NewClient(server.URL, "test-key")
	data, err := client.DownloadPhoto(server.URL + "/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestClient_RetryWithBackoff(t *testing.T) {
	client := unsplash.NewClient("https://api.test.com", "test-key")

	callCount := 0
	err := client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := unsplash.NewClient("https://api.test.com", "test-key")

	err := client.RetryWithBackoff(func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}
