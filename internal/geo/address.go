package geo

import "strings"

// StateCode extracts a 2-letter US state code from a free-form matched address
// string such as "123 Main St, Anytown, CA 90210". Comma segments are scanned
// right to left; the rightmost segment that is either a bare 2-letter uppercase
// code or a "ST 12345" ZIP-suffixed pair wins. Returns false when no segment
// matches.
func StateCode(matchedAddress string) (string, bool) {
	if matchedAddress == "" {
		return "", false
	}

	parts := strings.Split(matchedAddress, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		segment := strings.TrimSpace(parts[i])

		if isStateCode(segment) {
			return segment, true
		}

		// "CA 90210" style segment: state code followed by a ZIP
		if state, zip, found := strings.Cut(segment, " "); found {
			if isStateCode(state) && isDigits(zip) {
				return state, true
			}
		}
	}

	return "", false
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
