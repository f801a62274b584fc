package airports

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"skytide/internal/config"
)

// Master data published by the OurAirports project
const downloadURL = "https://davidmegginson.github.io/ourairports-data/airports.csv"

const databaseFile = "airports.db"

// Downloader fetches the raw airport master CSV.
type Downloader interface {
	Fetch() (io.ReadCloser, error)
}

type httpDownloader struct {
	httpClient *http.Client
	url        string
}

func (d *httpDownloader) Fetch() (io.ReadCloser, error) {
	resp, err := d.httpClient.Get(d.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch airport data: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("airport download returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// Service maintains and searches the local airport database.
type Service struct {
	downloader Downloader
	dataDir    string
	logger     *slog.Logger
}

// NewService creates an airport service that downloads from OurAirports.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	return NewServiceWithDownloader(
		&httpDownloader{httpClient: &http.Client{Timeout: cfg.Timeout()}, url: downloadURL},
		cfg.App.DataDir,
		logger,
	)
}

// NewServiceWithDownloader creates an airport service with a custom downloader.
// This is useful for testing against a fixture CSV.
func NewServiceWithDownloader(downloader Downloader, dataDir string, logger *slog.Logger) *Service {
	return &Service{
		downloader: downloader,
		dataDir:    dataDir,
		logger:     logger.With("component", "airport-service"),
	}
}

func (s *Service) databasePath() string {
	return filepath.Join(s.dataDir, databaseFile)
}

// Download fetches the master data, filters it, and rebuilds the local
// database. Returns the number of airports kept.
func (s *Service) Download(scheduledOnly bool) (int, error) {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create data directory: %w", err)
	}

	body, err := s.downloader.Fetch()
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = body.Close()
	}()

	airports, err := parseCSV(body, scheduledOnly)
	if err != nil {
		return 0, err
	}

	store, err := OpenStore(s.databasePath())
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = store.Close()
	}()

	if err := store.Replace(airports); err != nil {
		return 0, err
	}

	s.logger.Info("airport database rebuilt",
		"count", len(airports),
		"scheduled_only", scheduledOnly,
	)
	return len(airports), nil
}

// ensureDatabase downloads the master data on first use.
func (s *Service) ensureDatabase() (*Store, error) {
	if _, err := os.Stat(s.databasePath()); os.IsNotExist(err) {
		s.logger.Info("airport database not found, downloading")
		if _, err := s.Download(false); err != nil {
			return nil, err
		}
	}
	return OpenStore(s.databasePath())
}

// Search matches a wildcard pattern against the local database, downloading
// the master data first if needed.
func (s *Service) Search(pattern string) ([]Airport, error) {
	store, err := s.ensureDatabase()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = store.Close()
	}()

	return store.Search(pattern)
}

// Random picks n random airports from the local database.
func (s *Service) Random(n int) ([]Airport, error) {
	store, err := s.ensureDatabase()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = store.Close()
	}()

	return store.Random(n)
}
