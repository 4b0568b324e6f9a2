package trip

import (
	"errors"
	"fmt"
	"io"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/ridgeline-labs/gpx-to-itinerary/geo"
)

// ErrNoData means the file parsed cleanly but holds no tracks, routes, or
// waypoints.
var ErrNoData = errors.New("gpx file contains no tracks, routes, or waypoints")

// Load parses a GPX file from disk.
func Load(path string) (*Trip, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return FromGPX(g)
}

// Parse parses GPX bytes.
func Parse(data []byte) (*Trip, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}
	return FromGPX(g)
}

// ParseReader parses a GPX stream.
func ParseReader(r io.Reader) (*Trip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gpx: %w", err)
	}
	return Parse(data)
}

// FromGPX converts an already-parsed gpxgo document into the model the
// itinerary engine consumes.
func FromGPX(g *gpx.GPX) (*Trip, error) {
	t := &Trip{
		Name:        g.Name,
		Creator:     g.Creator,
		Description: g.Description,
	}

	for i := range g.Waypoints {
		t.Waypoints = append(t.Waypoints, convertWaypoint(&g.Waypoints[i]))
	}
	for i := range g.Routes {
		t.Routes = append(t.Routes, convertRoute(&g.Routes[i]))
	}
	for i := range g.Tracks {
		t.Tracks = append(t.Tracks, convertTrack(&g.Tracks[i]))
	}

	if t.Empty() {
		return nil, ErrNoData
	}
	return t, nil
}

func convertPoint(p *gpx.GPXPoint) GeoPoint {
	gp := GeoPoint{
		LatLon: geo.LatLon{Lat: p.Latitude, Lon: p.Longitude},
		Time:   p.Timestamp,
	}
	if p.Elevation.NotNull() {
		ele := p.Elevation.Value()
		gp.Elevation = &ele
	}
	return gp
}

func convertWaypoint(p *gpx.GPXPoint) Waypoint {
	return Waypoint{
		GeoPoint:    convertPoint(p),
		Name:        p.Name,
		Symbol:      p.Symbol,
		Description: p.Description,
	}
}

func convertRoute(r *gpx.GPXRoute) Route {
	route := Route{Name: r.Name, Description: r.Description}
	for i := range r.Points {
		p := &r.Points[i]
		rp := RoutePoint{
			GeoPoint:    convertPoint(p),
			Name:        p.Name,
			Symbol:      p.Symbol,
			Description: p.Description,
			Shaping:     shapingPoint(p),
		}
		if v, ok := extensionData(p.Extensions, extDepartureTime); ok {
			if dep, ok := parseDepartureTime(v); ok {
				rp.Departure = dep
			}
		}
		if v, ok := extensionData(p.Extensions, extStopDuration); ok {
			// Malformed durations are ignored; the classifier default applies.
			if d, err := parseISODuration(v); err == nil {
				rp.StopDuration = &d
			}
		}
		route.Points = append(route.Points, rp)
	}
	return route
}

func convertTrack(trk *gpx.GPXTrack) Track {
	track := Track{Name: trk.Name}
	for i := range trk.Segments {
		seg := &trk.Segments[i]
		points := make([]GeoPoint, 0, len(seg.Points))
		for j := range seg.Points {
			points = append(points, convertPoint(&seg.Points[j]))
		}
		track.Segments = append(track.Segments, points)
	}
	return track
}
