package geo

import "skytide/internal/types"

// Nearest scans candidates linearly and returns the one closest to target by
// great-circle distance, together with that distance in kilometers. Candidates
// for which loc reports no valid coordinate are skipped. On an exact distance
// tie the first-encountered candidate wins; the scan order is the caller's
// input order. Returns false when there are no usable candidates.
func Nearest[T any](target types.Coords, candidates []T, loc func(T) (types.Coords, bool)) (T, float64, bool) {
	var (
		best     T
		bestDist float64
		found    bool
	)

	for _, candidate := range candidates {
		coords, ok := loc(candidate)
		if !ok || !coords.Valid() {
			continue
		}
		dist := Haversine(target, coords)
		if !found || dist < bestDist {
			best = candidate
			bestDist = dist
			found = true
		}
	}

	if !found {
		var zero T
		return zero, 0, false
	}
	return best, bestDist, true
}
