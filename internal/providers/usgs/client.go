package usgs

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://earthquake.usgs.gov/fdsnws/event/1/
// Sample request: https://earthquake.usgs.gov/fdsnws/event/1/query?format=geojson&starttime=2024-01-01&minmagnitude=5
const (
	baseEventURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

	dateLayout = "2006-01-02"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseEventURL,
	}
}

// GetEarthquakes fetches earthquake events between the two dates with at least
// minMagnitude. maxMagnitude is optional. The query URL actually used is
// returned alongside the response so callers can surface it.
func (c *Client) GetEarthquakes(start, end time.Time, minMagnitude float64, maxMagnitude *float64) (*EventAPIResponse, string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("format", "geojson")
	q.Set("starttime", start.Format(dateLayout))
	q.Set("endtime", end.Format(dateLayout))
	q.Set("minmagnitude", fmt.Sprintf("%g", minMagnitude))
	if maxMagnitude != nil {
		q.Set("maxmagnitude", fmt.Sprintf("%g", *maxMagnitude))
	}
	u.RawQuery = q.Encode()
	requestURL := u.String()

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, requestURL, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, requestURL, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp EventAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, requestURL, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, requestURL, nil
}
