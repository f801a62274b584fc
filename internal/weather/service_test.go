package weather

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"skytide/internal/config"
	"skytide/internal/providers/nws"
	"skytide/internal/types"
)

func floatPtr(v float64) *float64 {
	return &v
}

// mockProvider implements PointProvider, StationProvider, and AlertProvider
// the way the single NWS client does.
type mockProvider struct {
	stations        map[string]*nws.StationAPIResponse
	observations    map[string]*nws.ObservationAPIResponse
	stationsNearby  *nws.StationsAPIResponse
	stationsErr     error
	point           *nws.PointAPIResponse
	pointErr        error
	forecast        *nws.ForecastAPIResponse
	forecastErr     error
	alerts          *nws.AlertsAPIResponse
	alertsErr       error
	observationHits []string
}

func (m *mockProvider) GetPoint(latitude, longitude float64) (*nws.PointAPIResponse, error) {
	if m.pointErr != nil {
		return nil, m.pointErr
	}
	return m.point, nil
}

func (m *mockProvider) GetForecast(forecastURL string) (*nws.ForecastAPIResponse, error) {
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	return m.forecast, nil
}

func (m *mockProvider) GetStations(latitude, longitude float64) (*nws.StationsAPIResponse, error) {
	if m.stationsErr != nil {
		return nil, m.stationsErr
	}
	return m.stationsNearby, nil
}

func (m *mockProvider) GetStation(stationID string) (*nws.StationAPIResponse, error) {
	station, ok := m.stations[stationID]
	if !ok {
		return nil, errors.New("station not found")
	}
	return station, nil
}

func (m *mockProvider) GetLatestObservation(stationID string) (*nws.ObservationAPIResponse, error) {
	m.observationHits = append(m.observationHits, stationID)
	obs, ok := m.observations[stationID]
	if !ok {
		return nil, errors.New("observation unavailable")
	}
	return obs, nil
}

func (m *mockProvider) GetActiveAlerts(latitude, longitude float64) (*nws.AlertsAPIResponse, error) {
	if m.alertsErr != nil {
		return nil, m.alertsErr
	}
	return m.alerts, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.NearestStationCount = 4
	return cfg
}

func stationResponse(name, tz string, lat, lon float64) *nws.StationAPIResponse {
	resp := &nws.StationAPIResponse{}
	resp.Properties.Name = name
	resp.Properties.TimeZone = tz
	resp.Geometry.Coordinates = []float64{lon, lat}
	return resp
}

func observationResponse(tempC, windKmh, windDir float64, conditions string) *nws.ObservationAPIResponse {
	resp := &nws.ObservationAPIResponse{}
	resp.Properties.Temperature = types.Measurement{Value: floatPtr(tempC), UnitCode: "wmoUnit:degC"}
	resp.Properties.WindSpeed = types.Measurement{Value: floatPtr(windKmh), UnitCode: "wmoUnit:km_h-1"}
	resp.Properties.WindDirection = types.Measurement{Value: floatPtr(windDir)}
	resp.Properties.TextDescription = conditions
	return resp
}

func forecastResponse(detailed string) *nws.ForecastAPIResponse {
	resp := &nws.ForecastAPIResponse{}
	resp.Properties.Periods = []nws.ForecastPeriod{
		{Name: "Today", DetailedForecast: detailed, ShortForecast: "Sunny"},
	}
	return resp
}

func pointResponse() *nws.PointAPIResponse {
	resp := &nws.PointAPIResponse{}
	resp.Properties.Forecast = "https://api.weather.gov/gridpoints/LWX/96,70/forecast"
	resp.Properties.ForecastHourly = "https://api.weather.gov/gridpoints/LWX/96,70/forecast/hourly"
	return resp
}

func TestAggregateStations_FullSuccess(t *testing.T) {
	provider := &mockProvider{
		stations: map[string]*nws.StationAPIResponse{
			"KBWI": stationResponse("Baltimore/Washington Intl", "America/New_York", 39.17, -76.68),
		},
		observations: map[string]*nws.ObservationAPIResponse{
			"KBWI": observationResponse(20, 10, 180, "Partly Cloudy"),
		},
		point:    pointResponse(),
		forecast: forecastResponse("Sunny, high near 75."),
	}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	results := svc.AggregateStations([]StationRef{{ID: "KBWI", Label: "BWI Airport"}})

	if len(results) != 1 {
		t.Fatalf("got %d records, want 1", len(results))
	}
	record := results[0]
	if record.Name != "Baltimore/Washington Intl" {
		t.Errorf("Name = %q", record.Name)
	}
	if record.TemperatureF == nil || *record.TemperatureF != 68.0 {
		t.Errorf("TemperatureF = %v, want 68", record.TemperatureF)
	}
	if record.TemperatureUnit != "F" {
		t.Errorf("TemperatureUnit = %q, want F", record.TemperatureUnit)
	}
	if record.WindSpeedMph == nil || *record.WindSpeedMph != 6.21 {
		t.Errorf("WindSpeedMph = %v, want 6.21", record.WindSpeedMph)
	}
	if record.Forecast != "Sunny, high near 75." {
		t.Errorf("Forecast = %q", record.Forecast)
	}
	if record.MapURL == "" || record.FlightradarURL == "" {
		t.Error("expected derived URLs to be populated")
	}
}

func TestAggregateStations_ObservationFailureDegradesFields(t *testing.T) {
	provider := &mockProvider{
		stations: map[string]*nws.StationAPIResponse{
			"KBWI": stationResponse("Baltimore/Washington Intl", "America/New_York", 39.17, -76.68),
			"KDCA": stationResponse("Reagan National", "America/New_York", 38.85, -77.03),
		},
		observations: map[string]*nws.ObservationAPIResponse{
			// KBWI has no observation entry, its fetch fails
			"KDCA": observationResponse(25, 16, 90, "Clear"),
		},
		point:    pointResponse(),
		forecast: forecastResponse("Clear tonight."),
	}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	results := svc.AggregateStations([]StationRef{
		{ID: "KBWI", Label: "BWI"},
		{ID: "KDCA", Label: "DCA"},
	})

	if len(results) != 2 {
		t.Fatalf("got %d records, want 2 (batch must continue)", len(results))
	}

	degraded := results[0]
	if degraded.Name == "" || degraded.Coords == nil {
		t.Error("metadata fields must survive an observation failure")
	}
	if degraded.TemperatureF != nil || degraded.WindSpeedMph != nil ||
		degraded.WindDirection != nil || degraded.Conditions != "" {
		t.Error("observation fields must all be absent after the fetch fails")
	}
	if degraded.Forecast == "" {
		t.Error("forecast must still be fetched after an observation failure")
	}

	healthy := results[1]
	if healthy.TemperatureF == nil || *healthy.TemperatureF != 77.0 {
		t.Errorf("second station TemperatureF = %v, want 77", healthy.TemperatureF)
	}
}

func TestAggregateStations_MetadataFailureSkipsStationOnly(t *testing.T) {
	provider := &mockProvider{
		stations: map[string]*nws.StationAPIResponse{
			// "KBAD" is absent, its metadata fetch fails
			"KDCA": stationResponse("Reagan National", "America/New_York", 38.85, -77.03),
		},
		observations: map[string]*nws.ObservationAPIResponse{
			"KDCA": observationResponse(25, 16, 90, "Clear"),
		},
		point:    pointResponse(),
		forecast: forecastResponse("Clear tonight."),
	}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	results := svc.AggregateStations([]StationRef{
		{ID: "KBAD", Label: "Broken"},
		{ID: "KDCA", Label: "DCA"},
	})

	if len(results) != 1 {
		t.Fatalf("got %d records, want 1", len(results))
	}
	if results[0].StationID != "KDCA" {
		t.Errorf("surviving station = %q, want KDCA", results[0].StationID)
	}
}

func TestAggregateStations_ForecastFailureKeepsObservation(t *testing.T) {
	provider := &mockProvider{
		stations: map[string]*nws.StationAPIResponse{
			"KBWI": stationResponse("Baltimore/Washington Intl", "America/New_York", 39.17, -76.68),
		},
		observations: map[string]*nws.ObservationAPIResponse{
			"KBWI": observationResponse(20, 10, 180, "Partly Cloudy"),
		},
		pointErr: errors.New("gridpoint unavailable"),
	}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	results := svc.AggregateStations([]StationRef{{ID: "KBWI", Label: "BWI"}})

	if len(results) != 1 {
		t.Fatalf("got %d records, want 1", len(results))
	}
	record := results[0]
	if record.Forecast != "" {
		t.Errorf("Forecast = %q, want absent", record.Forecast)
	}
	if record.TemperatureF == nil || record.Conditions != "Partly Cloudy" {
		t.Error("a forecast failure must not unwind the observation fields")
	}
}

func TestNearestStations_TakesProviderOrder(t *testing.T) {
	nearby := &nws.StationsAPIResponse{}
	for _, id := range []string{"S1", "S2", "S3", "S4", "S5", "S6"} {
		feature := nws.StationFeature{}
		feature.Properties.StationIdentifier = id
		feature.Properties.Name = "Station " + id
		feature.Geometry.Coordinates = []float64{-76.5, 38.9}
		nearby.Features = append(nearby.Features, feature)
	}

	provider := &mockProvider{
		stationsNearby: nearby,
		observations: map[string]*nws.ObservationAPIResponse{
			"S1": observationResponse(10, 5, 0, "Fog"),
			"S2": observationResponse(11, 5, 0, "Fog"),
			// S3 observation fails
			"S4": observationResponse(13, 5, 0, "Fog"),
		},
	}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	results, err := svc.NearestStations(types.NewCoords(38.9, -76.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("got %d stations, want first 4 in provider order", len(results))
	}
	for i, id := range []string{"S1", "S2", "S3", "S4"} {
		if results[i].StationID != id {
			t.Errorf("results[%d] = %q, want %q (provider order preserved)", i, results[i].StationID, id)
		}
	}

	// The failed station stays in the listing with absent observation fields
	if results[2].TemperatureF != nil || results[2].Conditions != "" {
		t.Error("station with failed observation must report absent fields")
	}
	if results[2].Name != "Station S3" {
		t.Errorf("station with failed observation keeps its name, got %q", results[2].Name)
	}

	// Only the first 4 stations are fetched at all; S5 and S6 never cost a
	// request.
	wantHits := []string{"S1", "S2", "S3", "S4"}
	if len(provider.observationHits) != len(wantHits) {
		t.Fatalf("observation fetches = %v, want %v", provider.observationHits, wantHits)
	}
	for i, id := range wantHits {
		if provider.observationHits[i] != id {
			t.Errorf("observation fetch %d = %q, want %q", i, provider.observationHits[i], id)
		}
	}
}

func TestNearestStations_ListFetchFailureIsAnError(t *testing.T) {
	provider := &mockProvider{stationsErr: errors.New("unavailable")}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	if _, err := svc.NearestStations(types.NewCoords(38.9, -76.5)); err == nil {
		t.Fatal("expected an error when the station list cannot be fetched")
	}
}

func TestCurrentConditions(t *testing.T) {
	provider := &mockProvider{
		point:    pointResponse(),
		forecast: forecastResponse("Sunny, high near 75."),
	}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	period, err := svc.CurrentConditions(types.NewCoords(38.9, -76.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if period.Name != "Today" {
		t.Errorf("period = %q, want Today", period.Name)
	}
}

func TestActiveAlerts(t *testing.T) {
	alerts := &nws.AlertsAPIResponse{}
	feature := nws.AlertFeature{}
	feature.Properties.Event = "Small Craft Advisory"
	alerts.Features = append(alerts.Features, feature)

	provider := &mockProvider{alerts: alerts}

	svc := NewServiceWithProviders(provider, provider, provider, testConfig(), testLogger())
	got, err := svc.ActiveAlerts(types.NewCoords(38.9, -76.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Properties.Event != "Small Craft Advisory" {
		t.Errorf("alerts = %+v", got)
	}
}
