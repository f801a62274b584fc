package usgs

import "skytide/internal/types"

type EventFeature struct {
	Properties struct {
		Mag    *float64 `json:"mag"`
		Place  string   `json:"place"`
		Time   *int64   `json:"time"` // milliseconds since epoch
		URL    string   `json:"url"`
		Felt   *int     `json:"felt"`
		Alert  string   `json:"alert"`
		Sig    *int     `json:"sig"`
		Type   string   `json:"type"`
		Title  string   `json:"title"`
		Tz     *int     `json:"tz"`
		Status string   `json:"status"`
	} `json:"properties"`
	Geometry struct {
		Type string `json:"type"`
		// GeoJSON order: [longitude, latitude, depth]
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

// Coordinates returns the epicenter as a Coords value.
func (f *EventFeature) Coordinates() (types.Coords, bool) {
	if len(f.Geometry.Coordinates) < 2 {
		return types.Coords{}, false
	}
	return types.NewCoords(f.Geometry.Coordinates[1], f.Geometry.Coordinates[0]), true
}

type EventAPIResponse struct {
	Features []EventFeature `json:"features"`
}
