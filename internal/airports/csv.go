package airports

import (
	"encoding/csv"
	"fmt"
	"io"
)

// parseCSV reads the OurAirports CSV and keeps the rows that pass the ident
// filter. Column positions are resolved from the header row, the upstream
// occasionally reorders columns.
func parseCSV(r io.Reader, scheduledOnly bool) ([]Airport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"ident", "name", "municipality", "iso_region", "scheduled_service"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV is missing the %q column", required)
		}
	}

	field := func(row []string, name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var airports []Airport
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		ident := field(row, "ident")
		if !UsableIdent(ident) {
			continue
		}

		scheduled := field(row, "scheduled_service") == "yes"
		if scheduledOnly && !scheduled {
			continue
		}

		airports = append(airports, Airport{
			Ident:        ident,
			Name:         field(row, "name"),
			Municipality: field(row, "municipality"),
			ISORegion:    field(row, "iso_region"),
			Scheduled:    scheduled,
		})
	}

	return airports, nil
}
