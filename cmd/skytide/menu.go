package main

import "fmt"

// screen is one state of the interactive menu.
type screen int

const (
	screenMain screen = iota
	screenAddress
	screenAirports
	screenQuakes
	screenTides
	screenExit
)

// dispatch runs one screen and returns the next one.
func (app *App) dispatch(current screen) (screen, error) {
	switch current {
	case screenMain:
		return app.mainMenu()
	case screenAddress:
		return app.addressMenu()
	case screenAirports:
		return app.airportsMenu()
	case screenQuakes:
		return app.quakesMenu()
	case screenTides:
		return app.tidesMenu()
	default:
		return screenExit, nil
	}
}

func (app *App) mainMenu() (screen, error) {
	fmt.Fprintln(app.out)
	app.heading("skytide: weather, tides, earthquakes")
	fmt.Fprintln(app.out, "1. Weather by address")
	fmt.Fprintln(app.out, "2. Airports")
	fmt.Fprintln(app.out, "3. Earthquakes")
	fmt.Fprintln(app.out, "4. Tides")
	fmt.Fprintln(app.out, "5. Exit")

	choice, err := app.prompt("Enter your choice: ")
	if err != nil {
		return screenExit, err
	}

	switch choice {
	case "1":
		return screenAddress, nil
	case "2":
		return screenAirports, nil
	case "3":
		return screenQuakes, nil
	case "4":
		return screenTides, nil
	case "5", "q", "Q":
		return screenExit, nil
	default:
		fmt.Fprintln(app.out, "Invalid choice. Please try again.")
		return screenMain, nil
	}
}
