// Package history keeps the addresses a user has already looked up so they can
// be re-selected without retyping. Best effort only: a missing file is an
// empty history.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const addressFile = "addresses.txt"

type Store struct {
	dataDir string
}

func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, addressFile)
}

// Load returns the saved addresses in the order they were added.
func (s *Store) Load() ([]string, error) {
	file, err := os.Open(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open address history: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var addresses []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			addresses = append(addresses, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read address history: %w", err)
	}
	return addresses, nil
}

// Append saves a new address unless it is already present.
func (s *Store) Append(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}

	existing, err := s.Load()
	if err != nil {
		return err
	}
	for _, known := range existing {
		if strings.EqualFold(known, address) {
			return nil
		}
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	file, err := os.OpenFile(s.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open address history: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := fmt.Fprintln(file, address); err != nil {
		return fmt.Errorf("failed to append address: %w", err)
	}
	return nil
}
