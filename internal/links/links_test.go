package links

import (
	"strings"
	"testing"
)

func TestGoogleMapsURL(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		zoom     int
		contains string
	}{
		{
			name:     "coordinate link without label",
			label:    "",
			zoom:     15,
			contains: "38.9,-76.5/@38.9,-76.5,15z",
		},
		{
			name:     "zoomed-out coordinate link",
			label:    "",
			zoom:     5,
			contains: ",5z",
		},
		{
			name:     "labelled place link",
			label:    "Annapolis, MD",
			contains: "/maps/place/Annapolis",
		},
		{
			name:     "zero zoom falls back to default",
			label:    "",
			zoom:     0,
			contains: ",15z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoogleMapsURL(38.9, -76.5, tt.label, tt.zoom)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("GoogleMapsURL = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}

func TestZillowURLs(t *testing.T) {
	sale, rent := ZillowURLs("Anne Arundel-Maryland")

	if sale != "https://www.zillow.com/anne-arundel-maryland/" {
		t.Errorf("sale URL = %q", sale)
	}
	if rent != "https://www.zillow.com/anne-arundel-maryland/rentals/" {
		t.Errorf("rent URL = %q", rent)
	}
}

func TestFlightradarURL(t *testing.T) {
	if got := FlightradarURL("KBWI"); got != "https://www.flightradar24.com/airport/KBWI" {
		t.Errorf("FlightradarURL = %q", got)
	}
}
