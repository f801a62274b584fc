package main

import (
	"fmt"

	"skytide/internal/links"
	"skytide/internal/providers/coops"
	"skytide/internal/tides"
	"skytide/internal/types"
)

func (app *App) tidesMenu() (screen, error) {
	address, err := app.chooseAddress()
	if err != nil {
		return screenExit, err
	}
	if address == "" {
		return screenMain, nil
	}

	var (
		coords  types.Coords
		matched string
		found   bool
		geoErr  error
	)
	app.spin("Locating address...", func() {
		coords, matched, found, geoErr = app.locationService.Geocode(address, app.geocoder())
	})
	if geoErr != nil {
		fmt.Fprintf(app.out, "Geocoding failed: %v\n", geoErr)
		return screenMain, nil
	}
	if !found {
		fmt.Fprintln(app.out, "No location found for that address.")
		return screenMain, nil
	}
	app.rememberAddress(matched)

	var (
		station  *coops.Station
		distance float64
		stFound  bool
		stErr    error
	)
	app.spin("Finding nearest tide station...", func() {
		station, distance, stFound, stErr = app.tideService.NearestStation(coords, matched)
	})
	if stErr != nil {
		fmt.Fprintf(app.out, "Tide station lookup failed: %v\n", stErr)
		return screenMain, nil
	}
	if !stFound {
		fmt.Fprintln(app.out, "No tide prediction station found for that state.")
		return screenMain, nil
	}

	fmt.Fprintln(app.out)
	app.heading(fmt.Sprintf("%s (%s), %s", station.Name, station.ID, station.State))
	app.field("Distance", fmt.Sprintf("%.1f km", distance))
	if stCoords, ok := station.Coordinates(); ok {
		mapURL := links.GoogleMapsURL(stCoords.Latitude, stCoords.Longitude, "", 12)
		app.field("Map", mapURL)
		app.openURL(mapURL)
	}

	var (
		predictions []tides.Prediction
		predErr     error
	)
	app.spin("Fetching tide predictions...", func() {
		predictions, predErr = app.tideService.Predictions(station.ID)
	})
	if predErr != nil {
		fmt.Fprintf(app.out, "Failed to fetch tide predictions: %v\n", predErr)
		return screenMain, nil
	}
	if len(predictions) == 0 {
		fmt.Fprintln(app.out, "No tide predictions available for this station.")
		return screenMain, nil
	}

	fmt.Fprintln(app.out)
	app.heading("Tide predictions")
	lastDay := ""
	for _, p := range predictions {
		day := p.Time.Format("Mon Jan 2")
		if day != lastDay {
			labelColor.Fprintln(app.out, day)
			lastDay = day
		}
		kind := "Low"
		if p.High {
			kind = "High"
		}
		fmt.Fprintf(app.out, "  %s  %-4s %6.2f ft\n", p.Time.Format("15:04"), kind, p.Height)
	}
	return screenMain, nil
}
