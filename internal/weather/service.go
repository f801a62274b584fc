package weather

import (
	"fmt"
	"log/slog"

	"skytide/internal/config"
	"skytide/internal/links"
	"skytide/internal/providers/nws"
	"skytide/internal/types"
)

// PointProvider fetches gridpoint metadata and forecasts derived from it.
type PointProvider interface {
	GetPoint(latitude, longitude float64) (*nws.PointAPIResponse, error)
	GetForecast(forecastURL string) (*nws.ForecastAPIResponse, error)
}

// StationProvider fetches observation stations and their data.
type StationProvider interface {
	GetStations(latitude, longitude float64) (*nws.StationsAPIResponse, error)
	GetStation(stationID string) (*nws.StationAPIResponse, error)
	GetLatestObservation(stationID string) (*nws.ObservationAPIResponse, error)
}

// AlertProvider fetches active weather alerts.
type AlertProvider interface {
	GetActiveAlerts(latitude, longitude float64) (*nws.AlertsAPIResponse, error)
}

// Service aggregates weather data for coordinates and stations.
type Service interface {
	// AggregateStations builds a StationWeather record per station. A station
	// whose metadata cannot be fetched is skipped; any other sub-fetch failure
	// degrades only the fields that sub-fetch would have populated.
	AggregateStations(refs []StationRef) []StationWeather
	// NearestStations reports the latest observation at the stations the
	// provider lists near a point, in the provider's order, limited by config.
	NearestStations(coords types.Coords) ([]StationObservation, error)
	// Forecast returns the ordered forecast periods for a coordinate.
	Forecast(coords types.Coords) ([]nws.ForecastPeriod, error)
	// HourlyForecast returns the ordered hourly forecast periods.
	HourlyForecast(coords types.Coords) ([]nws.ForecastPeriod, error)
	// CurrentConditions returns the first forecast period.
	CurrentConditions(coords types.Coords) (*nws.ForecastPeriod, error)
	// ActiveAlerts returns the active alerts covering a coordinate.
	ActiveAlerts(coords types.Coords) ([]nws.AlertFeature, error)
}

type weatherService struct {
	pointProvider   PointProvider
	stationProvider StationProvider
	alertProvider   AlertProvider
	cfg             *config.Config
	logger          *slog.Logger
}

// NewService creates a weather service backed by the real NWS client.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	client := nws.NewClient(cfg.Timeout())
	return NewServiceWithProviders(client, client, client, cfg, logger)
}

// NewServiceWithProviders creates a weather service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	pointProvider PointProvider,
	stationProvider StationProvider,
	alertProvider AlertProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		pointProvider:   pointProvider,
		stationProvider: stationProvider,
		alertProvider:   alertProvider,
		cfg:             cfg,
		logger:          logger.With("component", "weather-service"),
	}
}

func (s *weatherService) AggregateStations(refs []StationRef) []StationWeather {
	results := make([]StationWeather, 0, len(refs))

	for _, ref := range refs {
		record := StationWeather{StationID: ref.ID, Label: ref.Label}

		// Metadata is the one sub-fetch the record cannot survive without
		station, err := s.stationProvider.GetStation(ref.ID)
		if err != nil {
			s.logger.Warn("skipping station, metadata fetch failed",
				"station_id", ref.ID,
				"error", err,
			)
			continue
		}
		record.Name = station.Properties.Name
		record.TimeZone = station.Properties.TimeZone
		if coords, ok := station.Coordinates(); ok {
			record.Coords = &coords
		}

		// Observation failure degrades the observation fields only
		if obs, err := s.stationProvider.GetLatestObservation(ref.ID); err != nil {
			s.logger.Warn("observation fetch failed",
				"station_id", ref.ID,
				"error", err,
			)
		} else {
			record.TemperatureF, record.TemperatureUnit,
				record.WindSpeedMph, record.WindDirection,
				record.Conditions = normalizeObservation(obs)
		}

		// Forecast needs the coordinate from metadata
		if record.Coords != nil {
			if forecast, err := s.forecastText(*record.Coords); err != nil {
				s.logger.Warn("forecast fetch failed",
					"station_id", ref.ID,
					"error", err,
				)
			} else {
				record.Forecast = forecast
			}
		}

		if record.Coords != nil {
			record.MapURL = links.GoogleMapsURL(record.Coords.Latitude, record.Coords.Longitude, "", 0)
			record.FlightradarURL = links.FlightradarURL(ref.ID)
		}

		results = append(results, record)
	}

	return results
}

func (s *weatherService) forecastText(coords types.Coords) (string, error) {
	point, err := s.pointProvider.GetPoint(coords.Latitude, coords.Longitude)
	if err != nil {
		return "", fmt.Errorf("failed to get point data: %w", err)
	}

	forecast, err := s.pointProvider.GetForecast(point.Properties.Forecast)
	if err != nil {
		return "", fmt.Errorf("failed to get forecast: %w", err)
	}

	if len(forecast.Properties.Periods) == 0 {
		return "", fmt.Errorf("forecast has no periods")
	}
	return forecast.Properties.Periods[0].DetailedForecast, nil
}

func (s *weatherService) NearestStations(coords types.Coords) ([]StationObservation, error) {
	stations, err := s.stationProvider.GetStations(coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get stations: %w", err)
	}

	// The provider returns stations closest-first; take the first few as-is
	// rather than re-ranking them.
	limit := s.cfg.App.NearestStationCount
	if limit <= 0 {
		limit = 4
	}
	features := stations.Features
	if len(features) > limit {
		features = features[:limit]
	}

	results := make([]StationObservation, 0, len(features))
	for _, feature := range features {
		record := StationObservation{
			StationID: feature.Properties.StationIdentifier,
			Name:      feature.Properties.Name,
		}
		if stationCoords, ok := feature.Coordinates(); ok {
			record.Coords = &stationCoords
			record.MapURL = links.GoogleMapsURL(stationCoords.Latitude, stationCoords.Longitude, "", 0)
		}

		if obs, err := s.stationProvider.GetLatestObservation(record.StationID); err != nil {
			s.logger.Warn("observation fetch failed",
				"station_id", record.StationID,
				"error", err,
			)
		} else {
			record.TemperatureF, record.TemperatureUnit,
				record.WindSpeedMph, record.WindDirection,
				record.Conditions = normalizeObservation(obs)
		}

		results = append(results, record)
	}

	return results, nil
}

func (s *weatherService) Forecast(coords types.Coords) ([]nws.ForecastPeriod, error) {
	point, err := s.pointProvider.GetPoint(coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get point data: %w", err)
	}

	forecast, err := s.pointProvider.GetForecast(point.Properties.Forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return forecast.Properties.Periods, nil
}

func (s *weatherService) HourlyForecast(coords types.Coords) ([]nws.ForecastPeriod, error) {
	point, err := s.pointProvider.GetPoint(coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get point data: %w", err)
	}

	forecast, err := s.pointProvider.GetForecast(point.Properties.ForecastHourly)
	if err != nil {
		return nil, fmt.Errorf("failed to get hourly forecast: %w", err)
	}

	return forecast.Properties.Periods, nil
}

func (s *weatherService) CurrentConditions(coords types.Coords) (*nws.ForecastPeriod, error) {
	periods, err := s.Forecast(coords)
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("forecast has no periods")
	}
	return &periods[0], nil
}

func (s *weatherService) ActiveAlerts(coords types.Coords) ([]nws.AlertFeature, error) {
	alerts, err := s.alertProvider.GetActiveAlerts(coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get active alerts: %w", err)
	}
	return alerts.Features, nil
}
