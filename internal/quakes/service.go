package quakes

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"skytide/internal/config"
	"skytide/internal/links"
	"skytide/internal/providers/usgs"
	"skytide/internal/timezone"
	"skytide/internal/types"
)

// Window selects the time period an earthquake search covers.
type Window int

const (
	WindowLast48Hours Window = iota // default
	WindowToday
	WindowLast24Hours
	WindowLastWeek
)

const defaultMinMagnitude = 5

// Query describes an earthquake search.
type Query struct {
	MinMagnitude float64
	MaxMagnitude *float64
	Window       Window
}

// Earthquake is one normalized event from the USGS feed.
type Earthquake struct {
	Magnitude *float64
	Place     string
	Time      time.Time // local time at the epicenter when resolvable
	Coords    types.Coords
	DetailURL string
	MapsURL   string
}

// Provider defines the interface for the USGS event feed.
type Provider interface {
	GetEarthquakes(start, end time.Time, minMagnitude float64, maxMagnitude *float64) (*usgs.EventAPIResponse, string, error)
}

// Service searches recent earthquakes.
type Service interface {
	// Search runs the query and returns the matching events plus the feed URL
	// that was queried.
	Search(q Query) ([]Earthquake, string, error)
}

type quakeService struct {
	provider Provider
	tzSvc    timezone.Service
	logger   *slog.Logger
}

// NewService creates an earthquake service backed by the real USGS client.
// The timezone service is optional; without it event times stay in UTC.
func NewService(cfg *config.Config, tzSvc timezone.Service, logger *slog.Logger) Service {
	return NewServiceWithProvider(usgs.NewClient(cfg.Timeout()), tzSvc, logger)
}

// NewServiceWithProvider creates an earthquake service with a custom provider.
// This is useful for testing with a mock provider.
func NewServiceWithProvider(provider Provider, tzSvc timezone.Service, logger *slog.Logger) Service {
	return &quakeService{
		provider: provider,
		tzSvc:    tzSvc,
		logger:   logger.With("component", "quake-service"),
	}
}

// ParseMagnitudeRange parses user magnitude input: "" (default), a single
// value like "6", or a range like "3-9". Unparseable input falls back to the
// default minimum, matching how the search prompt behaves.
func ParseMagnitudeRange(input string) (minMagnitude float64, maxMagnitude *float64) {
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultMinMagnitude, nil
	}

	if low, high, found := strings.Cut(input, "-"); found {
		lowVal, lowErr := strconv.ParseFloat(strings.TrimSpace(low), 64)
		highVal, highErr := strconv.ParseFloat(strings.TrimSpace(high), 64)
		if lowErr != nil || highErr != nil {
			return defaultMinMagnitude, nil
		}
		return lowVal, &highVal
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return defaultMinMagnitude, nil
	}
	return value, nil
}

// bounds translates a window into the start/end dates the feed is queried
// with. The 48-hour default reaches one day back and one day forward, which
// covers "yesterday through today" in every timezone.
func (q Query) bounds(now time.Time) (start, end time.Time) {
	switch q.Window {
	case WindowToday:
		// Midnight in the caller's zone, not UTC; Truncate would shift the
		// date for anyone east of Greenwich in the early morning.
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), now
	case WindowLast24Hours:
		return now.Add(-24 * time.Hour), now
	case WindowLastWeek:
		return now.AddDate(0, 0, -7), now
	default:
		return now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)
	}
}

func (s *quakeService) Search(q Query) ([]Earthquake, string, error) {
	start, end := q.bounds(time.Now())

	resp, queryURL, err := s.provider.GetEarthquakes(start, end, q.MinMagnitude, q.MaxMagnitude)
	if err != nil {
		return nil, queryURL, fmt.Errorf("failed to get earthquake data: %w", err)
	}

	events := make([]Earthquake, 0, len(resp.Features))
	for i := range resp.Features {
		feature := &resp.Features[i]
		coords, ok := feature.Coordinates()
		if !ok {
			s.logger.Warn("skipping event without coordinates", "place", feature.Properties.Place)
			continue
		}

		event := Earthquake{
			Magnitude: feature.Properties.Mag,
			Place:     feature.Properties.Place,
			Coords:    coords,
			DetailURL: feature.Properties.URL,
			// A zoomed-out map gives regional context for an epicenter
			MapsURL: links.GoogleMapsURL(coords.Latitude, coords.Longitude, "", 5),
		}

		if feature.Properties.Time != nil {
			event.Time = time.UnixMilli(*feature.Properties.Time).UTC()
			if s.tzSvc != nil {
				event.Time = s.tzSvc.ToLocal(event.Time, coords.Latitude, coords.Longitude)
			}
		}

		events = append(events, event)
	}

	return events, queryURL, nil
}
