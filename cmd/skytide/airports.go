package main

import (
	"fmt"
	"strconv"
	"strings"

	"skytide/internal/airports"
	"skytide/internal/weather"
)

func (app *App) airportsMenu() (screen, error) {
	fmt.Fprintln(app.out)
	app.heading("Airports")
	fmt.Fprintln(app.out, "1. Search airports")
	fmt.Fprintln(app.out, "2. Weather at two random airports")
	fmt.Fprintln(app.out, "3. Refresh airport database")
	fmt.Fprintln(app.out, "4. Back to main menu")

	choice, err := app.prompt("Enter your choice: ")
	if err != nil {
		return screenExit, err
	}

	switch choice {
	case "1":
		if err := app.searchAirports(); err != nil {
			return screenExit, err
		}
	case "2":
		app.randomAirportWeather()
	case "3":
		if err := app.refreshAirports(); err != nil {
			return screenExit, err
		}
	case "4", "b", "B":
		return screenMain, nil
	default:
		fmt.Fprintln(app.out, "Invalid choice. Please try again.")
	}
	return screenAirports, nil
}

// searchAirports runs a wildcard search and, when the user picks a result,
// shows its current weather.
func (app *App) searchAirports() error {
	pattern, err := app.prompt("Search (use * as a wildcard, e.g. balt*): ")
	if err != nil {
		return err
	}
	if pattern == "" {
		return nil
	}

	var (
		results   []airports.Airport
		searchErr error
	)
	app.spin("Searching airports...", func() {
		results, searchErr = app.airportService.Search(pattern)
	})
	if searchErr != nil {
		fmt.Fprintf(app.out, "Airport search failed: %v\n", searchErr)
		return nil
	}
	if len(results) == 0 {
		fmt.Fprintln(app.out, "No airports matched.")
		return nil
	}

	fmt.Fprintln(app.out)
	for i, a := range results {
		fmt.Fprintf(app.out, "%d. %s  %s (%s, %s)\n", i+1, a.Ident, a.Name, a.Municipality, a.ISORegion)
	}

	choice, err := app.prompt("Pick an airport for weather (or press Enter to skip): ")
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(choice)
	if convErr != nil || n < 1 || n > len(results) {
		return nil
	}

	picked := results[n-1]
	if !airports.UsableIdent(picked.Ident) {
		fmt.Fprintf(app.out, "%s is not a US weather-reporting airport; no station data available.\n", picked.Ident)
		return nil
	}
	app.showAirportWeather([]airports.Airport{picked})
	return nil
}

func (app *App) randomAirportWeather() {
	var (
		picks []airports.Airport
		err   error
	)
	app.spin("Picking airports...", func() {
		picks, err = app.airportService.Random(2)
	})
	if err != nil {
		fmt.Fprintf(app.out, "Failed to pick airports: %v\n", err)
		return
	}
	if len(picks) == 0 {
		fmt.Fprintln(app.out, "No usable airports in the database.")
		return
	}
	app.showAirportWeather(picks)
}

func (app *App) showAirportWeather(picks []airports.Airport) {
	refs := make([]weather.StationRef, 0, len(picks))
	for _, a := range picks {
		refs = append(refs, weather.StationRef{
			ID:    strings.ToUpper(a.Ident),
			Label: a.Name,
		})
	}

	var reports []weather.StationWeather
	app.spin("Fetching airport weather...", func() {
		reports = app.weatherService.AggregateStations(refs)
	})
	if len(reports) == 0 {
		fmt.Fprintln(app.out, "No station data available for the selected airports.")
		return
	}
	for _, sw := range reports {
		app.printStationWeather(sw)
		app.openURL(sw.MapURL)
	}
}

func (app *App) refreshAirports() error {
	answer, err := app.prompt("Only keep airports with scheduled service? [Y/n]: ")
	if err != nil {
		return err
	}
	scheduledOnly := !strings.EqualFold(answer, "n") && !strings.EqualFold(answer, "no")

	var (
		count int
		dlErr error
	)
	app.spin("Downloading airport data...", func() {
		count, dlErr = app.airportService.Download(scheduledOnly)
	})
	if dlErr != nil {
		fmt.Fprintf(app.out, "Airport download failed: %v\n", dlErr)
		return nil
	}
	fmt.Fprintf(app.out, "Loaded %d airports.\n", count)
	return nil
}
