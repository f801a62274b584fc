package nws

import "skytide/internal/types"

type PointAPIResponse struct {
	Properties struct {
		Cwa                 string `json:"cwa"`
		GridId              string `json:"gridId"`
		GridX               int    `json:"gridX"`
		GridY               int    `json:"gridY"`
		Forecast            string `json:"forecast"`
		ForecastHourly      string `json:"forecastHourly"`
		ObservationStations string `json:"observationStations"`
		TimeZone            string `json:"timeZone"`
	} `json:"properties"`
}

type ForecastPeriod struct {
	Number           int    `json:"number"`
	Name             string `json:"name"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}

type ForecastAPIResponse struct {
	Properties struct {
		Updated string           `json:"updated"`
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

type StationFeature struct {
	Geometry struct {
		Type string `json:"type"`
		// GeoJSON order: [longitude, latitude]
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		StationIdentifier string `json:"stationIdentifier"`
		Name              string `json:"name"`
		TimeZone          string `json:"timeZone"`
	} `json:"properties"`
}

type StationsAPIResponse struct {
	Features []StationFeature `json:"features"`
}

type StationAPIResponse struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		StationIdentifier string `json:"stationIdentifier"`
		Name              string `json:"name"`
		TimeZone          string `json:"timeZone"`
	} `json:"properties"`
}

type ObservationAPIResponse struct {
	Properties struct {
		Timestamp       string            `json:"timestamp"`
		TextDescription string            `json:"textDescription"`
		Temperature     types.Measurement `json:"temperature"`
		WindSpeed       types.Measurement `json:"windSpeed"`
		WindDirection   types.Measurement `json:"windDirection"`
	} `json:"properties"`
}

// Coordinates returns the station location as a Coords value. GeoJSON points
// publish longitude first.
func (s *StationFeature) Coordinates() (types.Coords, bool) {
	if len(s.Geometry.Coordinates) < 2 {
		return types.Coords{}, false
	}
	return types.NewCoords(s.Geometry.Coordinates[1], s.Geometry.Coordinates[0]), true
}

// Coordinates returns the station location as a Coords value.
func (s *StationAPIResponse) Coordinates() (types.Coords, bool) {
	if len(s.Geometry.Coordinates) < 2 {
		return types.Coords{}, false
	}
	return types.NewCoords(s.Geometry.Coordinates[1], s.Geometry.Coordinates[0]), true
}

type AlertFeature struct {
	Properties struct {
		Event       string `json:"event"`
		Headline    string `json:"headline"`
		Severity    string `json:"severity"`
		Urgency     string `json:"urgency"`
		AreaDesc    string `json:"areaDesc"`
		Description string `json:"description"`
		Instruction string `json:"instruction"`
		Expires     string `json:"expires"`
	} `json:"properties"`
}

type AlertsAPIResponse struct {
	Features []AlertFeature `json:"features"`
}
