package trip

import (
	"time"

	"github.com/ridgeline-labs/gpx-to-itinerary/geo"
)

// GeoPoint is a single position read from the source file. Immutable once
// loaded.
type GeoPoint struct {
	geo.LatLon
	Elevation *float64
	Time      time.Time // zero when the source carries no timestamp
}

// Waypoint is an unordered point of interest.
type Waypoint struct {
	GeoPoint
	Name        string
	Symbol      string
	Description string
}

// RoutePoint is an ordered element of a Route. Departure and StopDuration
// come from Garmin TripExtensions when present. Shaping points exist only
// to bend the routed line and never become itinerary stops.
type RoutePoint struct {
	GeoPoint
	Name         string
	Symbol       string
	Description  string
	Shaping      bool
	Departure    *time.Time
	StopDuration *time.Duration
}

// Route is an ordered list of named points a navigation device routes
// between.
type Route struct {
	Name        string
	Description string
	Points      []RoutePoint
}

// Track is breadcrumb geometry with no point-of-interest semantics,
// possibly split into segments.
type Track struct {
	Name     string
	Segments [][]GeoPoint
}

// Points concatenates all segments into one ordered sequence for distance
// accumulation.
func (t *Track) Points() []GeoPoint {
	n := 0
	for _, seg := range t.Segments {
		n += len(seg)
	}
	out := make([]GeoPoint, 0, n)
	for _, seg := range t.Segments {
		out = append(out, seg...)
	}
	return out
}

// Trip is one parsed GPX file.
type Trip struct {
	Name        string
	Creator     string
	Description string
	Tracks      []Track
	Routes      []Route
	Waypoints   []Waypoint
}

// Empty reports whether the file carries no usable data at all.
func (t *Trip) Empty() bool {
	return len(t.Tracks) == 0 && len(t.Routes) == 0 && len(t.Waypoints) == 0
}

// stoppedSpeedThreshold separates riding from stopping when deriving moving
// time from track timestamps: a leg slower than this was a stop, whatever
// its duration.
const stoppedSpeedThreshold = 1.0 // km/h

// MovingTime sums the timestamp deltas between consecutive track points
// whose implied speed clears the stopped threshold. Zero when the file has
// no timestamps.
func (t *Trip) MovingTime() time.Duration {
	var total time.Duration
	for _, trk := range t.Tracks {
		for _, seg := range trk.Segments {
			for i := 1; i < len(seg); i++ {
				if seg[i-1].Time.IsZero() || seg[i].Time.IsZero() {
					continue
				}
				d := seg[i].Time.Sub(seg[i-1].Time)
				if d <= 0 {
					continue
				}
				km := seg[i-1].DistanceTo(seg[i].LatLon) / 1000
				if km/d.Hours() >= stoppedSpeedThreshold {
					total += d
				}
			}
		}
	}
	return total
}

// Length2D returns the total track distance of the file in meters.
func (t *Trip) Length2D() float64 {
	total := 0.0
	for _, trk := range t.Tracks {
		pts := trk.Points()
		for i := 1; i < len(pts); i++ {
			total += pts[i-1].DistanceTo(pts[i].LatLon)
		}
	}
	return total
}
