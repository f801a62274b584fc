package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"skytide/internal/config"
)

func main() {
	browser := pflag.Bool("browser", false, "open result links in the default browser")
	censusGeocoder := pflag.Bool("census", false, "use the US Census geocoder instead of Nominatim")
	logLevel := pflag.String("log-level", "", "override the configured log level")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if *censusGeocoder {
		if cfg.Census.APIKey != "" {
			fmt.Println("\nUS Census API key found and will be used for larger rate limits.")
		} else {
			fmt.Println("\nNo Census API key found. Geocoding will proceed without it and with rate limits.")
		}
	}

	app := NewApp(cfg, logger, Options{
		OpenBrowser: *browser,
		UseCensus:   *censusGeocoder,
	})

	if err := app.Run(); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}
