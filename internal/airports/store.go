package airports

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS airports (
	ident        TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	municipality TEXT NOT NULL,
	iso_region   TEXT NOT NULL,
	scheduled    INTEGER NOT NULL
);
`

// Store keeps the filtered airport master data in a local SQLite database so
// that searches don't re-download or re-parse the CSV.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the airport database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airport database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create airport schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the stored airports for a freshly downloaded set.
func (s *Store) Replace(airports []Airport) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM airports`); err != nil {
		return fmt.Errorf("failed to clear airports: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO airports (ident, name, municipality, iso_region, scheduled) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, airport := range airports {
		scheduled := 0
		if airport.Scheduled {
			scheduled = 1
		}
		if _, err := stmt.Exec(airport.Ident, airport.Name, airport.Municipality, airport.ISORegion, scheduled); err != nil {
			return fmt.Errorf("failed to insert airport %s: %w", airport.Ident, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit airports: %w", err)
	}
	return nil
}

// Count returns the number of stored airports.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM airports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return count, nil
}

// Search matches a case-insensitive wildcard pattern (* for any characters)
// against ident, name, municipality, and region. Results are sorted by region,
// then municipality, then name.
func (s *Store) Search(pattern string) ([]Airport, error) {
	like := wildcardToLike(pattern)

	rows, err := s.db.Query(`
		SELECT ident, name, municipality, iso_region, scheduled
		FROM airports
		WHERE UPPER(ident) LIKE ?
		   OR UPPER(name) LIKE ?
		   OR UPPER(municipality) LIKE ?
		   OR UPPER(iso_region) LIKE ?
		ORDER BY iso_region, municipality, name`,
		like, like, like, like)
	if err != nil {
		return nil, fmt.Errorf("failed to search airports: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanAirports(rows)
}

// Random returns n randomly chosen airports.
func (s *Store) Random(n int) ([]Airport, error) {
	rows, err := s.db.Query(`
		SELECT ident, name, municipality, iso_region, scheduled
		FROM airports
		ORDER BY RANDOM()
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to pick random airports: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanAirports(rows)
}

func scanAirports(rows *sql.Rows) ([]Airport, error) {
	var airports []Airport
	for rows.Next() {
		var airport Airport
		var scheduled int
		if err := rows.Scan(&airport.Ident, &airport.Name, &airport.Municipality, &airport.ISORegion, &scheduled); err != nil {
			return nil, fmt.Errorf("failed to scan airport row: %w", err)
		}
		airport.Scheduled = scheduled == 1
		airports = append(airports, airport)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read airport rows: %w", err)
	}
	return airports, nil
}

// wildcardToLike converts a user pattern with * wildcards into a SQL LIKE
// pattern. A bare term matches as a substring, the way a wildcard search is
// expected to behave.
func wildcardToLike(pattern string) string {
	pattern = strings.ToUpper(strings.TrimSpace(pattern))
	pattern = strings.ReplaceAll(pattern, "%", "")
	pattern = strings.ReplaceAll(pattern, "*", "%")
	return "%" + pattern + "%"
}
