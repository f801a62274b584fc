package airports

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

const fixtureCSV = `id,ident,type,name,latitude_deg,longitude_deg,elevation_ft,continent,iso_country,iso_region,municipality,scheduled_service,gps_code,iata_code,local_code,home_link,wikipedia_link,keywords
3411,KBWI,large_airport,Baltimore/Washington International Thurgood Marshall Airport,39.1754,-76.668297,146,NA,US,US-MD,Baltimore,yes,KBWI,BWI,BWI,,,
3412,KDCA,large_airport,Ronald Reagan Washington National Airport,38.8521,-77.037697,15,NA,US,US-VA,Washington,yes,KDCA,DCA,DCA,,,
3413,PHNL,large_airport,Daniel K Inouye International Airport,21.32062,-157.924228,13,NA,US,US-HI,Honolulu,yes,PHNL,HNL,HNL,,,
3414,K2W6,small_airport,St. Mary's County Regional Airport,38.315399,-76.550102,142,NA,US,US-MD,Leonardtown,no,K2W6,,2W6,,,
3415,EGLL,large_airport,London Heathrow Airport,51.4706,-0.461941,83,EU,GB,GB-ENG,London,yes,EGLL,LHR,,,,
3416,KFDK,small_airport,Frederick Municipal Airport,39.4176,-77.374496,303,NA,US,US-MD,Frederick,no,KFDK,FDK,FDK,,,
`

func TestUsableIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected bool
	}{
		{"KBWI", true},
		{"PHNL", true},
		{"TJSJ", true},
		{"EGLL", false}, // not a US prefix
		{"KBW", false},  // too short
		{"KBWIX", false},
		{"K2W6", false}, // digits
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := UsableIdent(tt.ident); got != tt.expected {
				t.Errorf("UsableIdent(%q) = %v, want %v", tt.ident, got, tt.expected)
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	t.Run("keeps only usable US airports", func(t *testing.T) {
		airports, err := parseCSV(strings.NewReader(fixtureCSV), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		idents := make([]string, 0, len(airports))
		for _, airport := range airports {
			idents = append(idents, airport.Ident)
		}
		expected := []string{"KBWI", "KDCA", "PHNL", "KFDK"}
		if len(idents) != len(expected) {
			t.Fatalf("idents = %v, want %v", idents, expected)
		}
		for i := range expected {
			if idents[i] != expected[i] {
				t.Errorf("idents[%d] = %q, want %q", i, idents[i], expected[i])
			}
		}
	})

	t.Run("scheduled-only filter", func(t *testing.T) {
		airports, err := parseCSV(strings.NewReader(fixtureCSV), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, airport := range airports {
			if !airport.Scheduled {
				t.Errorf("airport %s is not scheduled", airport.Ident)
			}
		}
		if len(airports) != 3 {
			t.Errorf("got %d airports, want 3", len(airports))
		}
	})

	t.Run("missing column", func(t *testing.T) {
		if _, err := parseCSV(strings.NewReader("id,code\n1,X\n"), false); err == nil {
			t.Fatal("expected an error for a CSV without the expected columns")
		}
	})
}

func TestWildcardToLike(t *testing.T) {
	tests := []struct {
		pattern  string
		expected string
	}{
		{"KBWI", "%KBWI%"},
		{"balt*", "%BALT%%"},
		{"*MD", "%%MD%"},
		{" frederick ", "%FREDERICK%"},
		{"a%b", "%AB%"}, // raw LIKE metacharacters are stripped
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := wildcardToLike(tt.pattern); got != tt.expected {
				t.Errorf("wildcardToLike(%q) = %q, want %q", tt.pattern, got, tt.expected)
			}
		})
	}
}

type fixtureDownloader struct{}

func (fixtureDownloader) Fetch() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(fixtureCSV)), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestServiceSearchAndRandom(t *testing.T) {
	svc := NewServiceWithDownloader(fixtureDownloader{}, t.TempDir(), testLogger())

	t.Run("search by municipality wildcard", func(t *testing.T) {
		results, err := svc.Search("balt*")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Ident != "KBWI" {
			t.Fatalf("results = %+v, want just KBWI", results)
		}
	})

	t.Run("search sorted by region then municipality", func(t *testing.T) {
		results, err := svc.Search("*")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 4 {
			t.Fatalf("got %d results, want 4", len(results))
		}
		// US-HI < US-MD < US-VA; within US-MD, Baltimore < Frederick
		expected := []string{"PHNL", "KBWI", "KFDK", "KDCA"}
		for i := range expected {
			if results[i].Ident != expected[i] {
				t.Errorf("results[%d] = %q, want %q", i, results[i].Ident, expected[i])
			}
		}
	})

	t.Run("search with no match", func(t *testing.T) {
		results, err := svc.Search("zzzz")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("results = %+v, want none", results)
		}
	})

	t.Run("random sample", func(t *testing.T) {
		results, err := svc.Random(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("got %d results, want 2", len(results))
		}
	})
}

func TestServiceDownloadScheduledOnly(t *testing.T) {
	svc := NewServiceWithDownloader(fixtureDownloader{}, t.TempDir(), testLogger())

	count, err := svc.Download(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
