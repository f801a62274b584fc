package coops

import "skytide/internal/types"

type Station struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	State string   `json:"state"`
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	// Some metadata responses have historically used "lon" instead of "lng"
	Lon *float64 `json:"lon"`
}

// Coordinates returns the station location, accepting either longitude field.
// Stations with missing coordinates report false.
func (s *Station) Coordinates() (types.Coords, bool) {
	if s.Lat == nil {
		return types.Coords{}, false
	}
	lng := s.Lng
	if lng == nil {
		lng = s.Lon
	}
	if lng == nil {
		return types.Coords{}, false
	}
	return types.NewCoords(*s.Lat, *lng), true
}

type StationsAPIResponse struct {
	Count    int       `json:"count"`
	Stations []Station `json:"stations"`
}

type Prediction struct {
	Time   string `json:"t"` // "2006-01-02 15:04" in station local time
	Height string `json:"v"` // feet above MLLW
	Type   string `json:"type"`
}

type PredictionsAPIResponse struct {
	Predictions []Prediction  `json:"predictions"`
	Error       *ErrorMessage `json:"error,omitempty"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}
