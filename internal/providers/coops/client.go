package coops

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://api.tidesandcurrents.noaa.gov/api/prod/
// Sample requests:
// - https://api.tidesandcurrents.noaa.gov/mdapi/prod/webapi/stations.json?type=tidepredictions&format=json
// - https://api.tidesandcurrents.noaa.gov/api/prod/datagetter?product=predictions&station=8454000&...
const (
	baseMetadataURL   = "https://api.tidesandcurrents.noaa.gov/mdapi/prod/webapi"
	baseDatagetterURL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"

	dateLayout = "20060102"
)

type Client struct {
	httpClient    *http.Client
	metadataURL   string
	datagetterURL string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		metadataURL:   baseMetadataURL,
		datagetterURL: baseDatagetterURL,
	}
}

// GetStations fetches every station that publishes tide prediction data.
func (c *Client) GetStations() (*StationsAPIResponse, error) {
	var apiResp StationsAPIResponse
	requestURL := c.metadataURL + "/stations.json?type=tidepredictions&format=json"
	if err := c.get(requestURL, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetStation fetches metadata for a single tide station.
func (c *Client) GetStation(stationID string) (*StationsAPIResponse, error) {
	var apiResp StationsAPIResponse
	requestURL := fmt.Sprintf("%s/stations/%s.json?format=json", c.metadataURL, url.PathEscape(stationID))
	if err := c.get(requestURL, &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// GetPredictions fetches high/low tide predictions for a station between the
// two dates, in local station time and feet above MLLW.
func (c *Client) GetPredictions(stationID string, begin, end time.Time) (*PredictionsAPIResponse, error) {
	u, err := url.Parse(c.datagetterURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("product", "predictions")
	q.Set("application", "skytide")
	q.Set("begin_date", begin.Format(dateLayout))
	q.Set("end_date", end.Format(dateLayout))
	q.Set("datum", "MLLW")
	q.Set("station", stationID)
	q.Set("time_zone", "lst_ldt")
	q.Set("units", "english")
	q.Set("interval", "hilo")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp PredictionsAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}

	// The datagetter can answer 200 OK with an error object in the body
	if apiResp.Error != nil {
		return nil, fmt.Errorf("datagetter error for station %s: %s", stationID, apiResp.Error.Message)
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
