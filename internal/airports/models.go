package airports

// Airport is one row of the OurAirports master data that survived filtering.
type Airport struct {
	Ident        string
	Name         string
	Municipality string
	ISORegion    string
	Scheduled    bool
}

// UsableIdent reports whether an ident looks like a US weather-reporting
// airport: ICAO prefix K (contiguous US), P (Pacific region), or T
// (territories), exactly four letters.
func UsableIdent(ident string) bool {
	if len(ident) != 4 {
		return false
	}
	switch ident[0] {
	case 'K', 'P', 'T':
	default:
		return false
	}
	for _, r := range ident {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
