// Package links builds external-site URLs shown alongside lookup results.
// Generation is pure string work and never fails; callers gate on having a
// coordinate before asking.
package links

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultZoom = 15

// GoogleMapsURL returns a maps link for a coordinate. With a label the link
// targets the named place instead of the raw coordinate.
func GoogleMapsURL(latitude, longitude float64, label string, zoom int) string {
	if zoom <= 0 {
		zoom = defaultZoom
	}
	if label == "" {
		return fmt.Sprintf("https://www.google.com/maps/place/%v,%v/@%v,%v,%dz?t=s",
			latitude, longitude, latitude, longitude, zoom)
	}
	return "https://www.google.com/maps/place/" + url.PathEscape(label)
}

// ZillowURLs returns the for-sale and for-rent search URLs for an area label
// such as "Annapolis-Maryland".
func ZillowURLs(area string) (saleURL, rentURL string) {
	slug := strings.ToLower(strings.ReplaceAll(area, " ", "-"))
	saleURL = fmt.Sprintf("https://www.zillow.com/%s/", slug)
	rentURL = fmt.Sprintf("https://www.zillow.com/%s/rentals/", slug)
	return saleURL, rentURL
}

// FlightradarURL returns the Flightradar24 page for an airport station ID.
func FlightradarURL(stationID string) string {
	return "https://www.flightradar24.com/airport/" + url.PathEscape(stationID)
}
