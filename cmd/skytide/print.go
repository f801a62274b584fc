package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"skytide/internal/types"
	"skytide/internal/weather"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgYellow)
	alertColor   = color.New(color.FgRed, color.Bold)
)

func (app *App) heading(text string) {
	headingColor.Fprintln(app.out, text)
	fmt.Fprintln(app.out, strings.Repeat("-", len(text)))
}

func (app *App) field(label, value string) {
	labelColor.Fprintf(app.out, "%s: ", label)
	fmt.Fprintln(app.out, value)
}

// formatFloat renders an optional measurement, with "N/A" for absent values.
func formatFloat(v *float64, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%s", *v, suffix)
}

func formatWind(speedMph, directionDeg *float64) string {
	if speedMph == nil {
		return "N/A"
	}
	cardinal := types.CardinalDirection(directionDeg)
	if cardinal == "" {
		return fmt.Sprintf("%.2f mph", *speedMph)
	}
	return fmt.Sprintf("%.2f mph %s", *speedMph, cardinal)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (app *App) printStationWeather(sw weather.StationWeather) {
	fmt.Fprintln(app.out)
	app.heading(fmt.Sprintf("%s (%s)", sw.Label, sw.StationID))
	app.field("Station", orNA(sw.Name))
	app.field("Time zone", orNA(sw.TimeZone))
	app.field("Temperature", formatFloat(sw.TemperatureF, " F"))
	app.field("Wind", formatWind(sw.WindSpeedMph, sw.WindDirection))
	app.field("Conditions", orNA(sw.Conditions))
	app.field("Forecast", orNA(sw.Forecast))
	if sw.MapURL != "" {
		app.field("Map", sw.MapURL)
	}
	if sw.FlightradarURL != "" {
		app.field("Flightradar", sw.FlightradarURL)
	}
}

func (app *App) printStationObservation(obs weather.StationObservation) {
	fmt.Fprintln(app.out)
	app.heading(fmt.Sprintf("%s (%s)", orNA(obs.Name), obs.StationID))
	app.field("Temperature", formatFloat(obs.TemperatureF, " F"))
	app.field("Wind", formatWind(obs.WindSpeedMph, obs.WindDirection))
	app.field("Conditions", orNA(obs.Conditions))
	if obs.MapURL != "" {
		app.field("Map", obs.MapURL)
	}
}
