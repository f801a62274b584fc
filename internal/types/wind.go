package types

var cardinals = []string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CardinalDirection maps a wind direction in degrees to its 16-point compass
// name. Returns "" for a nil direction.
func CardinalDirection(degrees *float64) string {
	if degrees == nil {
		return ""
	}
	index := int(*degrees/22.5+.5) % 16 // .5 for rounding
	if index < 0 {
		index += 16
	}
	return cardinals[index]
}
