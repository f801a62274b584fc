package weather

import (
	"skytide/internal/providers/nws"
	"skytide/internal/types"
)

// StationRef identifies a station to aggregate, with the label the user knows
// it by (an airport name for example).
type StationRef struct {
	ID    string
	Label string
}

// StationWeather is the per-station aggregate. Every field past the metadata
// block is independently optional: a failed sub-fetch degrades its own fields
// and leaves the rest alone.
type StationWeather struct {
	StationID string
	Label     string

	// From station metadata (required; a station without it is skipped)
	Name     string
	TimeZone string
	Coords   *types.Coords

	// From the latest observation
	TemperatureF    *float64
	TemperatureUnit string
	WindSpeedMph    *float64
	WindDirection   *float64
	Conditions      string

	// From the point forecast
	Forecast string

	// Derived
	MapURL         string
	FlightradarURL string
}

// StationObservation is the lighter record used for the "stations near a
// point" listing.
type StationObservation struct {
	StationID string
	Name      string
	Coords    *types.Coords

	TemperatureF    *float64
	TemperatureUnit string
	WindSpeedMph    *float64
	WindDirection   *float64
	Conditions      string

	MapURL string
}

// normalizeObservation converts the raw observation units (Celsius, km/h) into
// the presentation units (Fahrenheit, mph).
func normalizeObservation(obs *nws.ObservationAPIResponse) (temperatureF *float64, unit string, windMph, windDir *float64, conditions string) {
	temperature := types.CelsiusToFahrenheit(obs.Properties.Temperature)
	windMph = types.KmhToMph(obs.Properties.WindSpeed.Value)
	windDir = obs.Properties.WindDirection.Value
	return temperature.Value, temperature.UnitCode, windMph, windDir, obs.Properties.TextDescription
}
