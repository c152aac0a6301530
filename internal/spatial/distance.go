package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/trailstats/trailstats/internal/models"
)

// Earth radius constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points
// in meters using the s2 geometry library.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Distance3D returns the physical distance in meters between two samples:
// great-circle distance over the sphere combined with the elevation delta as
// sqrt(horizontal² + vertical²). The vertical term is 0 when either sample
// has no elevation. Coincident points yield exactly 0.
func Distance3D(a, b models.Point) float64 {
	if a.Latitude == b.Latitude && a.Longitude == b.Longitude {
		if !a.HasElevation() || !b.HasElevation() {
			return 0
		}
		return math.Abs(*b.Elevation - *a.Elevation)
	}

	horizontal := HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	if !a.HasElevation() || !b.HasElevation() {
		return horizontal
	}

	vertical := *b.Elevation - *a.Elevation
	return math.Sqrt(horizontal*horizontal + vertical*vertical)
}
