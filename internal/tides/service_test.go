package tides

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/matryer/is"

	"skytide/internal/config"
	"skytide/internal/providers/coops"
	"skytide/internal/types"
)

func floatPtr(v float64) *float64 {
	return &v
}

type mockProvider struct {
	directory      *coops.StationsAPIResponse
	directoryErr   error
	station        *coops.StationsAPIResponse
	stationErr     error
	predictions    *coops.PredictionsAPIResponse
	predictionsErr error
}

func (m *mockProvider) GetStations() (*coops.StationsAPIResponse, error) {
	return m.directory, m.directoryErr
}

func (m *mockProvider) GetStation(stationID string) (*coops.StationsAPIResponse, error) {
	return m.station, m.stationErr
}

func (m *mockProvider) GetPredictions(stationID string, begin, end time.Time) (*coops.PredictionsAPIResponse, error) {
	return m.predictions, m.predictionsErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.TidePredictionDays = 1
	return cfg
}

func tideStation(id, state string, lat, lng *float64) coops.Station {
	return coops.Station{ID: id, Name: "Station " + id, State: state, Lat: lat, Lng: lng}
}

func TestNearestStation(t *testing.T) {
	// Target near Annapolis, MD
	target := types.NewCoords(38.97, -76.48)

	directory := &coops.StationsAPIResponse{
		Stations: []coops.Station{
			tideStation("8575512", "MD", floatPtr(38.983), floatPtr(-76.479)), // Annapolis, ~1.5 km
			tideStation("8574680", "MD", floatPtr(39.267), floatPtr(-76.579)), // Baltimore, ~34 km
			tideStation("8638863", "VA", floatPtr(37.0), floatPtr(-76.3)),     // wrong state
			tideStation("8573364", "MD", nil, nil),                            // missing coordinates
		},
	}

	t.Run("nearest in matching state wins", func(t *testing.T) {
		is := is.New(t)
		svc := NewServiceWithProvider(&mockProvider{directory: directory}, testConfig(), testLogger())

		station, dist, found, err := svc.NearestStation(target, "123 Main St, Annapolis, MD 21401")
		is.NoErr(err)
		is.True(found)
		is.Equal(station.ID, "8575512")
		is.True(dist < 5)
	})

	t.Run("lon field accepted in place of lng", func(t *testing.T) {
		is := is.New(t)
		lonOnly := &coops.StationsAPIResponse{
			Stations: []coops.Station{
				{ID: "8575512", State: "MD", Lat: floatPtr(38.983), Lon: floatPtr(-76.479)},
			},
		}
		svc := NewServiceWithProvider(&mockProvider{directory: lonOnly}, testConfig(), testLogger())

		station, _, found, err := svc.NearestStation(target, "Annapolis, MD 21401")
		is.NoErr(err)
		is.True(found)
		is.Equal(station.ID, "8575512")
	})

	t.Run("no state in address", func(t *testing.T) {
		is := is.New(t)
		svc := NewServiceWithProvider(&mockProvider{directory: directory}, testConfig(), testLogger())

		_, _, found, err := svc.NearestStation(target, "somewhere without a state")
		is.NoErr(err) // not-found is a value, not an error
		is.True(!found)
	})

	t.Run("no stations in state", func(t *testing.T) {
		is := is.New(t)
		svc := NewServiceWithProvider(&mockProvider{directory: directory}, testConfig(), testLogger())

		_, _, found, err := svc.NearestStation(target, "100 Desert Rd, Phoenix, AZ 85001")
		is.NoErr(err)
		is.True(!found)
	})

	t.Run("all candidates missing coordinates", func(t *testing.T) {
		is := is.New(t)
		broken := &coops.StationsAPIResponse{
			Stations: []coops.Station{tideStation("1", "MD", nil, nil)},
		}
		svc := NewServiceWithProvider(&mockProvider{directory: broken}, testConfig(), testLogger())

		_, _, found, err := svc.NearestStation(target, "Annapolis, MD 21401")
		is.NoErr(err)
		is.True(!found)
	})

	t.Run("directory fetch failure is an error", func(t *testing.T) {
		is := is.New(t)
		svc := NewServiceWithProvider(&mockProvider{directoryErr: errors.New("unavailable")}, testConfig(), testLogger())

		_, _, _, err := svc.NearestStation(target, "Annapolis, MD 21401")
		is.True(err != nil)
	})
}

func TestStationInfo(t *testing.T) {
	is := is.New(t)

	resp := &coops.StationsAPIResponse{
		Stations: []coops.Station{tideStation("8575512", "MD", floatPtr(38.983), floatPtr(-76.479))},
	}
	svc := NewServiceWithProvider(&mockProvider{station: resp}, testConfig(), testLogger())

	station, err := svc.StationInfo("8575512")
	is.NoErr(err)
	is.Equal(station.Name, "Station 8575512")

	empty := NewServiceWithProvider(&mockProvider{station: &coops.StationsAPIResponse{}}, testConfig(), testLogger())
	_, err = empty.StationInfo("nope")
	is.True(err != nil)
}

func TestPredictions(t *testing.T) {
	is := is.New(t)

	resp := &coops.PredictionsAPIResponse{
		Predictions: []coops.Prediction{
			{Time: "2026-08-30 03:12", Height: "5.67", Type: "H"},
			{Time: "2026-08-30 09:45", Height: "0.42", Type: "L"},
			{Time: "not a time", Height: "1.0", Type: "H"},
			{Time: "2026-08-30 15:30", Height: "bad", Type: "H"},
		},
	}
	svc := NewServiceWithProvider(&mockProvider{predictions: resp}, testConfig(), testLogger())

	predictions, err := svc.Predictions("8575512")
	is.NoErr(err)
	is.Equal(len(predictions), 2) // malformed rows are skipped, not fatal

	is.True(predictions[0].High)
	is.Equal(predictions[0].Height, 5.67)
	is.Equal(predictions[0].Time.Hour(), 3)

	is.True(!predictions[1].High)
	is.Equal(predictions[1].Height, 0.42)
}

func TestPredictionsProviderError(t *testing.T) {
	is := is.New(t)

	svc := NewServiceWithProvider(&mockProvider{predictionsErr: errors.New("station offline")}, testConfig(), testLogger())
	_, err := svc.Predictions("8575512")
	is.True(err != nil)
}
