package unsplash

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxSearchRetries bounds how often a transient search failure is retried
// before the query is given up on.
const maxSearchRetries = 3

// Client talks to the Unsplash search API. It owns the one external timeout
// boundary of the pipeline; callers see plain errors and decide whether to
// continue with the next query.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

// Photo is a raw record as the search endpoint returns it, before any
// validation or normalization.
type Photo struct {
	ID             string `json:"id"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Color          string `json:"color"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	Links struct {
		HTML     string `json:"html"`
		Download string `json:"download"`
	} `json:"links"`
	User struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user"`
	Location struct {
		Name    string `json:"name"`
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
}

type SearchResponse struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

func NewClient(baseURL, accessKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SearchPhotos fetches one page of landscape-oriented search results,
// retrying transient upstream failures with backoff. Client errors other
// than rate limiting fail immediately.
func (c *Client) SearchPhotos(query string, page, perPage int) ([]Photo, error) {
	var photos []Photo
	var permanent error

	err := c.RetryWithBackoff(func() error {
		result, err := c.searchPage(query, page, perPage)
		if err != nil {
			if isRetryable(err) {
				return err
			}
			permanent = err
			return nil
		}
		photos = result
		return nil
	}, maxSearchRetries)

	if permanent != nil {
		return nil, permanent
	}
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (c *Client) searchPage(query string, page, perPage int) ([]Photo, error) {
	endpoint := strings.TrimSuffix(c.baseURL, "/") + "/search/photos"

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")
	params.Set("client_id", c.accessKey)

	req, err := http.NewRequest("GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &statusError{query: query, status: resp.StatusCode, body: string(body)}
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Results, nil
}

// statusError is a non-2xx search response. It keeps the status code around
// so the retry path can tell transient failures from permanent ones.
type statusError struct {
	query  string
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("search %q failed: status %d, body: %s", e.query, e.status, e.body)
}

// isRetryable reports whether another attempt could plausibly succeed:
// network failures, rate limiting, and server-side errors.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status == http.StatusTooManyRequests || se.status >= http.StatusInternalServerError
	}
	return true
}

// DownloadPhoto fetches the binary asset behind a download URL.
func (c *Client) DownloadPhoto(downloadURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download photo: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo body: %w", err)
	}

	return data, nil
}

// RetryWithBackoff executes a function with fixed-schedule backoff. The
// search API is rate limited, so transient failures are worth a few retries.
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
