package main

import (
	"fmt"

	"skytide/internal/quakes"
)

func (app *App) quakesMenu() (screen, error) {
	magInput, err := app.prompt("Magnitude or range (e.g. 5, 3-9; Enter for 5+): ")
	if err != nil {
		return screenExit, err
	}
	minMag, maxMag := quakes.ParseMagnitudeRange(magInput)

	fmt.Fprintln(app.out)
	fmt.Fprintln(app.out, "1. Last 48 hours")
	fmt.Fprintln(app.out, "2. Today")
	fmt.Fprintln(app.out, "3. Last 24 hours")
	fmt.Fprintln(app.out, "4. Last week")

	choice, err := app.prompt("Time period (Enter for last 48 hours): ")
	if err != nil {
		return screenExit, err
	}
	window := quakes.WindowLast48Hours
	switch choice {
	case "2":
		window = quakes.WindowToday
	case "3":
		window = quakes.WindowLast24Hours
	case "4":
		window = quakes.WindowLastWeek
	}

	var (
		events    []quakes.Earthquake
		queryURL  string
		searchErr error
	)
	app.spin("Searching earthquakes...", func() {
		events, queryURL, searchErr = app.quakeService.Search(quakes.Query{
			MinMagnitude: minMag,
			MaxMagnitude: maxMag,
			Window:       window,
		})
	})
	if searchErr != nil {
		fmt.Fprintf(app.out, "Earthquake search failed: %v\n", searchErr)
		return screenMain, nil
	}

	fmt.Fprintln(app.out)
	app.field("Feed", queryURL)
	if len(events) == 0 {
		fmt.Fprintln(app.out, "No earthquakes matched.")
		return screenMain, nil
	}

	for _, e := range events {
		fmt.Fprintln(app.out)
		app.heading(fmt.Sprintf("M %s: %s", formatFloat(e.Magnitude, ""), e.Place))
		app.field("Time", e.Time.Format("Mon Jan 2 15:04 MST"))
		app.field("Coordinates", fmt.Sprintf("%.4f, %.4f", e.Coords.Latitude, e.Coords.Longitude))
		app.field("Details", e.DetailURL)
		app.field("Map", e.MapsURL)
	}
	fmt.Fprintf(app.out, "\n%d earthquakes found.\n", len(events))
	return screenMain, nil
}
