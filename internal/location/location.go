package location

import (
	"fmt"
	"log/slog"
	"strconv"

	"skytide/internal/config"
	"skytide/internal/providers/census"
	"skytide/internal/providers/fcc"
	"skytide/internal/providers/openstreetmap"
	"skytide/internal/types"
)

// Provider selects which geocoding backend answers a request.
type Provider int

const (
	ProviderNominatim Provider = iota
	ProviderCensus
)

// CensusProvider defines the interface for the US Census geocoder.
type CensusProvider interface {
	Geocode(address string) (*census.GeocodeAPIResponse, error)
	ReverseGeographies(latitude, longitude float64) (*census.ReverseAPIResponse, error)
}

// NominatimProvider defines the interface for the OpenStreetMap geocoder.
type NominatimProvider interface {
	Search(query string) (openstreetmap.SearchAPIResponse, error)
	Reverse(latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}

// BlockProvider defines the interface for the FCC block lookup.
type BlockProvider interface {
	FindBlock(latitude, longitude float64) (*fcc.BlockAPIResponse, error)
}

// Service resolves addresses to coordinates and coordinates to human-readable
// place labels.
type Service interface {
	// Geocode resolves a street address. A not-found address is reported via
	// the bool, not an error.
	Geocode(address string, provider Provider) (types.Coords, string, bool, error)
	// CityState resolves a coordinate to a "City-State" label, or the provider's
	// best combined label. Returns false when nothing usable comes back.
	CityState(coords types.Coords, provider Provider) (string, bool)
	// CountyState resolves a coordinate to a "County-State" label.
	CountyState(coords types.Coords) (string, bool)
}

type locationService struct {
	censusProvider    CensusProvider
	nominatimProvider NominatimProvider
	blockProvider     BlockProvider
	logger            *slog.Logger
}

// NewService creates a location service backed by the real geocoder clients.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	return NewServiceWithProviders(
		census.NewClient(cfg.Timeout(), cfg.Census.APIKey),
		openstreetmap.NewClient(cfg.Timeout()),
		fcc.NewClient(cfg.Timeout()),
		logger,
	)
}

// NewServiceWithProviders creates a location service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	censusProvider CensusProvider,
	nominatimProvider NominatimProvider,
	blockProvider BlockProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		censusProvider:    censusProvider,
		nominatimProvider: nominatimProvider,
		blockProvider:     blockProvider,
		logger:            logger.With("component", "location-service"),
	}
}

func (s *locationService) Geocode(address string, provider Provider) (types.Coords, string, bool, error) {
	if provider == ProviderCensus {
		resp, err := s.censusProvider.Geocode(address)
		if err != nil {
			return types.Coords{}, "", false, fmt.Errorf("census geocode failed: %w", err)
		}
		if len(resp.Result.AddressMatches) == 0 {
			return types.Coords{}, "", false, nil
		}
		match := resp.Result.AddressMatches[0]
		coords := types.NewCoords(match.Coordinates.Y, match.Coordinates.X)
		return coords, match.MatchedAddress, true, nil
	}

	results, err := s.nominatimProvider.Search(address)
	if err != nil {
		return types.Coords{}, "", false, fmt.Errorf("nominatim search failed: %w", err)
	}
	if len(results) == 0 {
		return types.Coords{}, "", false, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return types.Coords{}, "", false, fmt.Errorf("nominatim returned unparseable coordinates %q,%q", results[0].Lat, results[0].Lon)
	}

	// Nominatim search results carry no normalized address, keep the query
	return types.NewCoords(lat, lon), address, true, nil
}

// extractor produces one candidate label from a reverse-geocode response.
type extractor func(*census.ReverseAPIResponse) (string, bool)

// censusExtractors is the priority order for turning a Census geographies
// response into a label. The first extractor that yields a value wins.
var censusExtractors = []extractor{
	// An urban-area basename is already a combined label
	func(r *census.ReverseAPIResponse) (string, bool) {
		return r.Layer("Urban Areas")
	},
	func(r *census.ReverseAPIResponse) (string, bool) {
		return joinWithState(r, "Incorporated Places")
	},
	func(r *census.ReverseAPIResponse) (string, bool) {
		return joinWithState(r, "County Subdivisions")
	},
}

func joinWithState(r *census.ReverseAPIResponse, layer string) (string, bool) {
	place, ok := r.Layer(layer)
	if !ok {
		return "", false
	}
	state, ok := r.Layer("States")
	if !ok {
		return "", false
	}
	return place + "-" + state, true
}

func firstPresent(r *census.ReverseAPIResponse, extractors []extractor) (string, bool) {
	for _, extract := range extractors {
		if label, ok := extract(r); ok {
			return label, true
		}
	}
	return "", false
}

func (s *locationService) CityState(coords types.Coords, provider Provider) (string, bool) {
	if provider == ProviderCensus {
		resp, err := s.censusProvider.ReverseGeographies(coords.Latitude, coords.Longitude)
		if err != nil {
			s.logger.Warn("census reverse geocode failed",
				"latitude", coords.Latitude,
				"longitude", coords.Longitude,
				"error", err,
			)
			return "", false
		}
		return firstPresent(resp, censusExtractors)
	}

	resp, err := s.nominatimProvider.Reverse(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("nominatim reverse geocode failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return "", false
	}

	city := resp.City()
	state := resp.Address.State
	if city == "" || state == "" {
		return "", false
	}
	return city + "-" + state, true
}

func (s *locationService) CountyState(coords types.Coords) (string, bool) {
	resp, err := s.blockProvider.FindBlock(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("fcc block lookup failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return "", false
	}

	if resp.County.Name == "" || resp.State.Name == "" {
		return "", false
	}
	return resp.County.Name + "-" + resp.State.Name, true
}
