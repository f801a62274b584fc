package census

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://geocoding.geo.census.gov/geocoder/
// Sample requests:
// - https://geocoding.geo.census.gov/geocoder/locations/onelineaddress?address=...&benchmark=Public_AR_Current&format=json
// - https://geocoding.geo.census.gov/geocoder/geographies/coordinates?x=-74&y=40&benchmark=Public_AR_Current&vintage=Current_Current&format=json
const (
	baseGeocodeURL = "https://geocoding.geo.census.gov/geocoder/locations/onelineaddress"
	baseReverseURL = "https://geocoding.geo.census.gov/geocoder/geographies/coordinates"

	benchmark = "Public_AR_Current"
	vintage   = "Current_Current"
)

type Client struct {
	httpClient *http.Client
	geocodeURL string
	reverseURL string
	apiKey     string
}

// NewClient creates a Census geocoder client. The API key is optional and only
// raises rate limits.
func NewClient(timeout time.Duration, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		geocodeURL: baseGeocodeURL,
		reverseURL: baseReverseURL,
		apiKey:     apiKey,
	}
}

// Geocode resolves a one-line street address to coordinates and the matched
// address the geocoder settled on.
func (c *Client) Geocode(address string) (*GeocodeAPIResponse, error) {
	u, err := url.Parse(c.geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("address", address)
	q.Set("benchmark", benchmark)
	q.Set("format", "json")
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	var apiResp GeocodeAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// ReverseGeographies resolves a coordinate to the Census geography layers
// covering it. The layers are returned raw so that each one can be decoded
// independently of the others.
func (c *Client) ReverseGeographies(latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.reverseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("x", fmt.Sprintf("%f", longitude))
	q.Set("y", fmt.Sprintf("%f", latitude))
	q.Set("benchmark", benchmark)
	q.Set("vintage", vintage)
	q.Set("format", "json")
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
