package census

import "encoding/json"

type GeocodeAPIResponse struct {
	Result struct {
		AddressMatches []AddressMatch `json:"addressMatches"`
	} `json:"result"`
}

type AddressMatch struct {
	MatchedAddress string `json:"matchedAddress"`
	Coordinates    struct {
		X float64 `json:"x"` // longitude
		Y float64 `json:"y"` // latitude
	} `json:"coordinates"`
}

// ReverseAPIResponse keeps the geography layers as raw JSON. The geocoder is
// not consistent about which layers it includes or how it shapes them, so each
// layer is decoded on demand and a malformed layer only costs itself.
type ReverseAPIResponse struct {
	Result struct {
		Geographies map[string]json.RawMessage `json:"geographies"`
	} `json:"result"`
}

type GeographyEntry struct {
	Basename string `json:"BASENAME"`
	Name     string `json:"NAME"`
	GeoID    string `json:"GEOID"`
}

// Layer decodes a single geography layer by name and returns the first entry's
// BASENAME. Missing layers, empty lists, blank basenames, and decode failures
// all report not-found rather than an error.
func (r *ReverseAPIResponse) Layer(name string) (string, bool) {
	raw, ok := r.Result.Geographies[name]
	if !ok {
		return "", false
	}

	var entries []GeographyEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return "", false
	}
	if len(entries) == 0 || entries[0].Basename == "" {
		return "", false
	}
	return entries[0].Basename, true
}
