package openstreetmap

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Overview/
// Sample requests:
// - https://nominatim.openstreetmap.org/search?q=...&format=json&limit=1
// - https://nominatim.openstreetmap.org/reverse?lat=39.11&lon=-107.65&format=jsonv2
const (
	baseSearchURL  = "https://nominatim.openstreetmap.org/search"
	baseReverseURL = "https://nominatim.openstreetmap.org/reverse"
)

type Client struct {
	httpClient *http.Client
	searchURL  string
	reverseURL string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		searchURL:  baseSearchURL,
		reverseURL: baseReverseURL,
	}
}

// Search geocodes a free-form query and returns the matching places, best
// match first.
func (c *Client) Search(query string) (SearchAPIResponse, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	var apiResp SearchAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}
	return apiResp, nil
}

// Reverse resolves a coordinate to the surrounding address details.
func (c *Client) Reverse(latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.reverseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "jsonv2")
	u.RawQuery = q.Encode()

	var apiResp ReverseAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

func (c *Client) get(requestURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying agent
	req.Header.Set("User-Agent", "skytide/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
