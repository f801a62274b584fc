package main

import (
	"fmt"
	"strconv"

	"skytide/internal/links"
	"skytide/internal/providers/nws"
	"skytide/internal/types"
	"skytide/internal/weather"
)

// chooseAddress lets the user pick a previously used address or type a new
// one. New addresses are remembered for the next session.
func (app *App) chooseAddress() (string, error) {
	saved, err := app.addressHistory.Load()
	if err != nil {
		app.logger.Warn("failed to load address history", "error", err)
	}

	if len(saved) > 0 {
		fmt.Fprintln(app.out)
		app.heading("Saved addresses")
		for i, addr := range saved {
			fmt.Fprintf(app.out, "%d. %s\n", i+1, addr)
		}
		fmt.Fprintln(app.out, "0. Enter a new address")

		choice, err := app.prompt("Enter your choice: ")
		if err != nil {
			return "", err
		}
		if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(saved) {
			return saved[n-1], nil
		}
	}

	address, err := app.prompt("Enter an address (street, city, state): ")
	if err != nil {
		return "", err
	}
	return address, nil
}

// rememberAddress records a successfully matched address. Raw input is never
// saved, so typos that matched nothing cannot pile up in the list.
func (app *App) rememberAddress(matched string) {
	if err := app.addressHistory.Append(matched); err != nil {
		app.logger.Warn("failed to save address", "address", matched, "error", err)
	}
}

func (app *App) addressMenu() (screen, error) {
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

	fmt.Fprintln(app.out)
	app.field("Matched", matched)
	app.field("Coordinates", fmt.Sprintf("%.6f, %.6f", coords.Latitude, coords.Longitude))

	for {
		fmt.Fprintln(app.out)
		app.heading("Weather for " + matched)
		fmt.Fprintln(app.out, "1. Current conditions")
		fmt.Fprintln(app.out, "2. Extended forecast")
		fmt.Fprintln(app.out, "3. Hourly forecast")
		fmt.Fprintln(app.out, "4. Active alerts")
		fmt.Fprintln(app.out, "5. Nearest stations")
		fmt.Fprintln(app.out, "6. Area info")
		fmt.Fprintln(app.out, "7. Back to main menu")

		choice, err := app.prompt("Enter your choice: ")
		if err != nil {
			return screenExit, err
		}

		switch choice {
		case "1":
			app.showCurrentConditions(coords)
		case "2":
			app.showForecast(coords, false)
		case "3":
			app.showForecast(coords, true)
		case "4":
			app.showAlerts(coords)
		case "5":
			app.showNearestStations(coords)
		case "6":
			app.showAreaInfo(coords, matched)
		case "7", "b", "B":
			return screenMain, nil
		default:
			fmt.Fprintln(app.out, "Invalid choice. Please try again.")
		}
	}
}

func (app *App) showCurrentConditions(coords types.Coords) {
	var (
		current *nws.ForecastPeriod
		err     error
	)
	app.spin("Fetching current conditions...", func() {
		current, err = app.weatherService.CurrentConditions(coords)
	})
	if err != nil {
		fmt.Fprintf(app.out, "Failed to fetch current conditions: %v\n", err)
		return
	}
	fmt.Fprintln(app.out)
	app.heading(current.Name)
	app.field("Temperature", fmt.Sprintf("%d %s", current.Temperature, current.TemperatureUnit))
	app.field("Wind", fmt.Sprintf("%s %s", current.WindSpeed, current.WindDirection))
	app.field("Conditions", orNA(current.ShortForecast))
	app.field("Details", orNA(current.DetailedForecast))
}

func (app *App) showForecast(coords types.Coords, hourly bool) {
	var (
		periods []nws.ForecastPeriod
		err     error
	)
	if hourly {
		app.spin("Fetching hourly forecast...", func() {
			periods, err = app.weatherService.HourlyForecast(coords)
		})
	} else {
		app.spin("Fetching forecast...", func() {
			periods, err = app.weatherService.Forecast(coords)
		})
	}
	if err != nil {
		fmt.Fprintf(app.out, "Failed to fetch forecast: %v\n", err)
		return
	}
	// The hourly feed covers a week; only the configured slice is useful
	// at the terminal.
	if hourly && app.cfg.App.ForecastPeriods > 0 && len(periods) > app.cfg.App.ForecastPeriods {
		periods = periods[:app.cfg.App.ForecastPeriods]
	}
	for _, p := range periods {
		fmt.Fprintln(app.out)
		name := p.Name
		if name == "" {
			name = p.StartTime
		}
		app.heading(name)
		app.field("Temperature", fmt.Sprintf("%d %s", p.Temperature, p.TemperatureUnit))
		app.field("Wind", fmt.Sprintf("%s %s", p.WindSpeed, p.WindDirection))
		if p.DetailedForecast != "" {
			app.field("Forecast", p.DetailedForecast)
		} else {
			app.field("Forecast", orNA(p.ShortForecast))
		}
	}
}

func (app *App) showAlerts(coords types.Coords) {
	var (
		alerts []nws.AlertFeature
		err    error
	)
	app.spin("Fetching active alerts...", func() {
		alerts, err = app.weatherService.ActiveAlerts(coords)
	})
	if err != nil {
		fmt.Fprintf(app.out, "Failed to fetch alerts: %v\n", err)
		return
	}
	if len(alerts) == 0 {
		fmt.Fprintln(app.out, "No active alerts for this location.")
		return
	}
	for _, a := range alerts {
		fmt.Fprintln(app.out)
		alertColor.Fprintln(app.out, a.Properties.Event)
		app.field("Headline", orNA(a.Properties.Headline))
		app.field("Severity", orNA(a.Properties.Severity))
		app.field("Areas", orNA(a.Properties.AreaDesc))
		app.field("Expires", orNA(a.Properties.Expires))
		if a.Properties.Description != "" {
			fmt.Fprintln(app.out, a.Properties.Description)
		}
		if a.Properties.Instruction != "" {
			labelColor.Fprintln(app.out, "Instructions:")
			fmt.Fprintln(app.out, a.Properties.Instruction)
		}
	}
}

func (app *App) showNearestStations(coords types.Coords) {
	var (
		observations []weather.StationObservation
		err          error
	)
	app.spin("Fetching nearby stations...", func() {
		observations, err = app.weatherService.NearestStations(coords)
	})
	if err != nil {
		fmt.Fprintf(app.out, "Failed to fetch stations: %v\n", err)
		return
	}
	if len(observations) == 0 {
		fmt.Fprintln(app.out, "No observation stations found nearby.")
		return
	}
	for _, obs := range observations {
		app.printStationObservation(obs)
	}
}

// showAreaInfo prints the neighborhood links: maps, real estate, and the
// reverse-geocoded city and county labels.
func (app *App) showAreaInfo(coords types.Coords, matched string) {
	mapURL := links.GoogleMapsURL(coords.Latitude, coords.Longitude, matched, 15)
	fmt.Fprintln(app.out)
	app.field("Map", mapURL)
	app.openURL(mapURL)

	if cityState, ok := app.locationService.CityState(coords, app.geocoder()); ok {
		app.field("City", cityState)
		saleURL, rentURL := links.ZillowURLs(cityState)
		app.field("Homes for sale", saleURL)
		app.field("Homes for rent", rentURL)
	} else {
		fmt.Fprintln(app.out, "City could not be determined for this location.")
	}

	if countyState, ok := app.locationService.CountyState(coords); ok {
		app.field("County", countyState)
	}
}
