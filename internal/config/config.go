package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Census CensusConfig
	Log    LogConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DataDir             string // Directory for the address history and airport database
	NearestStationCount int    // Number of observation stations shown for a point
	TidePredictionDays  int    // Number of days of tide predictions to fetch
	ForecastPeriods     int    // How many hourly forecast periods to print
}

// HTTPConfig holds settings applied to every outbound request
type HTTPConfig struct {
	TimeoutSeconds int
}

// CensusConfig holds US Census geocoder settings
type CensusConfig struct {
	APIKey string // Optional; raises the geocoder rate limits
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.skytide")

	// Set defaults
	viper.SetDefault("app.dataDir", "data")
	viper.SetDefault("app.nearestStationCount", 4)
	viper.SetDefault("app.tidePredictionDays", 1)
	viper.SetDefault("app.forecastPeriods", 12)
	viper.SetDefault("http.timeoutSeconds", 15)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")

	// Read from environment variables
	viper.SetEnvPrefix("SKYTIDE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The Census geocoder key is conventionally published via CENSUS_API_KEY
	if cfg.Census.APIKey == "" {
		cfg.Census.APIKey = os.Getenv("CENSUS_API_KEY")
	}

	return &cfg, nil
}

// Timeout returns the timeout applied to every outbound HTTP request.
// A hung upstream must never hang the whole tool.
func (c *Config) Timeout() time.Duration {
	if c.HTTP.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default: // "text" or anything else
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}
