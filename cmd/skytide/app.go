package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"skytide/internal/airports"
	"skytide/internal/config"
	"skytide/internal/history"
	"skytide/internal/location"
	"skytide/internal/quakes"
	"skytide/internal/tides"
	"skytide/internal/timezone"
	"skytide/internal/weather"
)

// Options are the command-line toggles that shape a session.
type Options struct {
	OpenBrowser bool
	UseCensus   bool
}

// errInterrupted signals that the user closed stdin; the whole program winds
// down, not just the current screen.
var errInterrupted = errors.New("input interrupted")

// App encapsulates application dependencies
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	opts    Options
	reader  *bufio.Reader
	out     io.Writer
	spinner *spinner.Spinner

	locationService location.Service
	weatherService  weather.Service
	tideService     tides.Service
	quakeService    quakes.Service
	airportService  *airports.Service
	addressHistory  *history.Store
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, opts Options) *App {
	// The timezone data set is large; a lookup failure only costs local-time
	// rendering, so start without it rather than refusing to start.
	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone service unavailable, times will be shown in UTC", "error", err)
		tzSvc = nil
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
		opts:   opts,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		spinner: spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr)),

		locationService: location.NewService(cfg, logger),
		weatherService:  weather.NewService(cfg, logger),
		tideService:     tides.NewService(cfg, logger),
		quakeService:    quakes.NewService(cfg, tzSvc, logger),
		airportService:  airports.NewService(cfg, logger),
		addressHistory:  history.NewStore(cfg.App.DataDir),
	}

	logger.Info("application initialized")
	return app
}

// geocoder returns the provider the session was started with.
func (app *App) geocoder() location.Provider {
	if app.opts.UseCensus {
		return location.ProviderCensus
	}
	return location.ProviderNominatim
}

// prompt prints a label and reads one trimmed line. Closed input terminates
// the whole program promptly.
func (app *App) prompt(label string) (string, error) {
	fmt.Fprint(app.out, label)
	line, err := app.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errInterrupted
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// spin runs fn behind a progress spinner.
func (app *App) spin(text string, fn func()) {
	app.spinner.Suffix = " " + text
	app.spinner.Start()
	fn()
	app.spinner.Stop()
}

// Run drives the menu state machine until the user exits or input closes.
// Every screen is a state returning the next state; errors from prompts
// unwind straight out of the loop instead of re-entering menus recursively.
func (app *App) Run() error {
	current := screenMain
	for current != screenExit {
		next, err := app.dispatch(current)
		if err != nil {
			if errors.Is(err, errInterrupted) {
				fmt.Fprintln(app.out, "\n\nExiting... Goodbye!")
				return nil
			}
			return err
		}
		current = next
	}
	fmt.Fprintln(app.out, "\nGoodbye!")
	return nil
}
