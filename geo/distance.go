package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters

	MetersPerMile     = 1609.344
	MilesPerKilometer = 0.621371
	FeetPerMeter      = 3.28084
)

// LatLon is a coordinate pair in signed degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// Distance calculates the great-circle distance between two points in meters.
// Identical coordinates yield exactly 0.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DistanceTo returns the great-circle distance to another point in meters.
func (p LatLon) DistanceTo(q LatLon) float64 {
	return Distance(p.Lat, p.Lon, q.Lat, q.Lon)
}

// Miles converts meters to statute miles.
func Miles(meters float64) float64 { return meters / MetersPerMile }

// Kilometers converts meters to kilometers.
func Kilometers(meters float64) float64 { return meters / 1000 }

// DisplayDistance converts meters to the configured display unit.
func DisplayDistance(meters float64, imperial bool) float64 {
	if imperial {
		return Miles(meters)
	}
	return Kilometers(meters)
}

// FormatDistance renders a distance with its unit suffix.
func FormatDistance(meters float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.1f mi", Miles(meters))
	}
	return fmt.Sprintf("%.1f km", Kilometers(meters))
}

// FormatSpeed renders a display-unit speed with its unit suffix.
func FormatSpeed(speed float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.0f mph", speed)
	}
	return fmt.Sprintf("%.0f km/h", speed)
}

// FormatElevation renders an elevation in meters as feet or meters.
func FormatElevation(meters float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.0f ft", meters*FeetPerMeter)
	}
	return fmt.Sprintf("%.0f m", meters)
}

// SpeedMetersPerMinute converts a display-unit speed (mph or km/h) to
// meters per minute.
func SpeedMetersPerMinute(speed float64, imperial bool) float64 {
	if imperial {
		return speed * MetersPerMile / 60
	}
	return speed * 1000 / 60
}
