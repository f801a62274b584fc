package tides

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"skytide/internal/config"
	"skytide/internal/geo"
	"skytide/internal/providers/coops"
	"skytide/internal/types"
)

// Prediction is a single high or low tide event at a station.
type Prediction struct {
	Time   time.Time
	Height float64 // feet above MLLW
	High   bool
}

// StationProvider defines the interface for the NOAA CO-OPS metadata and
// prediction APIs.
type StationProvider interface {
	GetStations() (*coops.StationsAPIResponse, error)
	GetStation(stationID string) (*coops.StationsAPIResponse, error)
	GetPredictions(stationID string, begin, end time.Time) (*coops.PredictionsAPIResponse, error)
}

// Service finds tide stations and their predictions.
type Service interface {
	// NearestStation finds the tide station closest to the coordinate among
	// the stations in the address's state. The state is read from the matched
	// address string; without one there is nothing to filter by and the
	// lookup reports not-found.
	NearestStation(coords types.Coords, matchedAddress string) (*coops.Station, float64, bool, error)
	// StationInfo fetches metadata for a single station.
	StationInfo(stationID string) (*coops.Station, error)
	// Predictions fetches the upcoming high/low tide events for a station.
	Predictions(stationID string) ([]Prediction, error)
}

type tideService struct {
	provider StationProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewService creates a tide service backed by the real CO-OPS client.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithProvider(coops.NewClient(cfg.Timeout()), cfg, logger)
}

// NewServiceWithProvider creates a tide service with a custom provider.
// This is useful for testing with a mock provider.
func NewServiceWithProvider(provider StationProvider, cfg *config.Config, logger *slog.Logger) Service {
	return &tideService{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("component", "tide-service"),
	}
}

func (s *tideService) NearestStation(coords types.Coords, matchedAddress string) (*coops.Station, float64, bool, error) {
	state, ok := geo.StateCode(matchedAddress)
	if !ok {
		s.logger.Debug("no state code in matched address", "address", matchedAddress)
		return nil, 0, false, nil
	}

	directory, err := s.provider.GetStations()
	if err != nil {
		return nil, 0, false, fmt.Errorf("failed to get tide station directory: %w", err)
	}

	stateStations := make([]coops.Station, 0)
	for _, station := range directory.Stations {
		if station.State == state {
			stateStations = append(stateStations, station)
		}
	}
	if len(stateStations) == 0 {
		s.logger.Debug("no tide stations with prediction data in state", "state", state)
		return nil, 0, false, nil
	}

	nearest, dist, ok := geo.Nearest(coords, stateStations, func(st coops.Station) (types.Coords, bool) {
		return st.Coordinates()
	})
	if !ok {
		return nil, 0, false, nil
	}

	s.logger.Debug("found nearest tide station",
		"station_id", nearest.ID,
		"state", state,
		"distance_km", dist,
	)
	return &nearest, dist, true, nil
}

func (s *tideService) StationInfo(stationID string) (*coops.Station, error) {
	resp, err := s.provider.GetStation(stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get station info: %w", err)
	}
	if len(resp.Stations) == 0 {
		return nil, fmt.Errorf("station %s not found", stationID)
	}
	return &resp.Stations[0], nil
}

func (s *tideService) Predictions(stationID string) ([]Prediction, error) {
	days := s.cfg.App.TidePredictionDays
	if days <= 0 {
		days = 1
	}
	begin := time.Now()
	end := begin.AddDate(0, 0, days)

	resp, err := s.provider.GetPredictions(stationID, begin, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get tide predictions: %w", err)
	}

	predictions := make([]Prediction, 0, len(resp.Predictions))
	for _, raw := range resp.Predictions {
		// Times come back already in station local time
		eventTime, err := time.Parse("2006-01-02 15:04", raw.Time)
		if err != nil {
			s.logger.Warn("skipping unparseable prediction",
				"station_id", stationID,
				"time", raw.Time,
				"error", err,
			)
			continue
		}
		height, err := strconv.ParseFloat(raw.Height, 64)
		if err != nil {
			s.logger.Warn("skipping prediction with unparseable height",
				"station_id", stationID,
				"height", raw.Height,
				"error", err,
			)
			continue
		}
		predictions = append(predictions, Prediction{
			Time:   eventTime,
			Height: height,
			High:   raw.Type == "H",
		})
	}

	return predictions, nil
}
