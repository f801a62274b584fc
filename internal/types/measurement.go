package types

import "math"

const KmhToMphFactor = 0.621371

// Measurement is a quantitative value as published by the NWS observation API.
// A nil Value means the upstream did not report the field; that is a normal
// outcome, not an error.
type Measurement struct {
	Value    *float64 `json:"value"`
	UnitCode string   `json:"unitCode"`
}

// KmhToMph converts a wind speed from kilometers per hour to miles per hour,
// rounded to two decimals. A nil input stays nil.
func KmhToMph(kmh *float64) *float64 {
	if kmh == nil {
		return nil
	}
	mph := round2(*kmh * KmhToMphFactor)
	return &mph
}

// CelsiusToFahrenheit converts a Celsius temperature measurement to Fahrenheit,
// rounded to two decimals. An absent value yields {nil, ""} so that callers can
// render "no data" without special-casing.
func CelsiusToFahrenheit(m Measurement) Measurement {
	if m.Value == nil {
		return Measurement{Value: nil, UnitCode: ""}
	}
	f := round2(*m.Value*9/5 + 32)
	return Measurement{Value: &f, UnitCode: "F"}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
