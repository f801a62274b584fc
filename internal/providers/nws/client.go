package nws

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/39.1154,-107.65840
// - https://api.weather.gov/stations/KASE/observations/latest
const (
	baseURL = "https://api.weather.gov"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetPoint fetches the gridpoint metadata for a coordinate, including the
// forecast, hourly forecast, and observation station URLs derived from it.
func (c *Client) GetPoint(latitude, longitude float64) (*PointAPIResponse, error) {
	var apiResp PointAPIResponse
	if err := c.get(fmt.Sprintf("%s/points/%f,%f", c.baseURL, latitude, longitude), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetForecast fetches an ordered list of forecast periods from a forecast URL
// previously returned by GetPoint.
func (c *Client) GetForecast(forecastURL string) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.get(forecastURL, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetStations fetches the observation stations near a coordinate, in the
// provider's own ordering.
func (c *Client) GetStations(latitude, longitude float64) (*StationsAPIResponse, error) {
	var apiResp StationsAPIResponse
	if err := c.get(fmt.Sprintf("%s/points/%f,%f/stations", c.baseURL, latitude, longitude), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetStation fetches metadata for a single observation station.
func (c *Client) GetStation(stationID string) (*StationAPIResponse, error) {
	var apiResp StationAPIResponse
	if err := c.get(fmt.Sprintf("%s/stations/%s", c.baseURL, url.PathEscape(stationID)), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetLatestObservation fetches the most recent observation for a station.
func (c *Client) GetLatestObservation(stationID string) (*ObservationAPIResponse, error) {
	var apiResp ObservationAPIResponse
	if err := c.get(fmt.Sprintf("%s/stations/%s/observations/latest", c.baseURL, url.PathEscape(stationID)), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetActiveAlerts fetches the active weather alerts covering a coordinate.
func (c *Client) GetActiveAlerts(latitude, longitude float64) (*AlertsAPIResponse, error) {
	u, err := url.Parse(c.baseURL + "/alerts/active")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("point", fmt.Sprintf("%f,%f", latitude, longitude))
	u.RawQuery = q.Encode()

	var apiResp AlertsAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

func (c *Client) get(requestURL string, out any) error {
	resp, err := c.httpClient.Get(requestURL)
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
