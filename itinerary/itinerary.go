package itinerary

import (
	"fmt"
	"time"

	"github.com/ridgeline-labs/gpx-to-itinerary/geo"
	"github.com/ridgeline-labs/gpx-to-itinerary/trip"
)

// Build converts one parsed GPX file into an itinerary. Multiple tracks or
// routes become independent day sections; a section-level input error is
// attached to its section so the rest of the file still converts. Build is
// a pure function of its inputs, so independent files or sections may be
// converted concurrently by the caller.
func Build(t *trip.Trip, opts Options) (*Itinerary, error) {
	opts = opts.withDefaults()
	if opts.Speed <= 0 {
		return nil, ErrZeroSpeed
	}
	a := &assembler{
		opts:  opts,
		speed: geo.SpeedMetersPerMinute(opts.Speed, opts.Imperial),
	}

	it := &Itinerary{
		Name:        t.Name,
		Creator:     t.Creator,
		Description: t.Description,
		MovingTime:  t.MovingTime(),
	}

	day := 0
	var baseDate time.Time
	misses := make([]projectionMiss, len(t.Waypoints))
	for i := range t.Tracks {
		sec := a.trackSection(&t.Tracks[i], t.Waypoints, day, &baseDate, misses)
		it.Sections = append(it.Sections, sec)
		if sec.Err == nil {
			day++
		}
	}
	// A waypoint outside the threshold on every track is noted once, against
	// the track it came nearest to.
	for i := range misses {
		m := &misses[i]
		if m.bound || m.nearestTrack == "" {
			continue
		}
		it.Notes = append(it.Notes, fmt.Sprintf("waypoint %q is %s from track %q; skipped",
			t.Waypoints[i].Name, geo.FormatDistance(m.nearestOffset, opts.Imperial), m.nearestTrack))
	}
	for i := range t.Routes {
		sec := a.routeSection(&t.Routes[i], day, &baseDate)
		it.Sections = append(it.Sections, sec)
		if sec.Err == nil {
			day++
		}
	}
	if len(t.Tracks) == 0 && len(t.Waypoints) > 0 {
		it.Sections = append(it.Sections, a.waypointSection(t.Waypoints, t.Routes))
	}

	// File total follows the recorded geometry: the full track length plus
	// the routed sections.
	it.TotalDistance = t.Length2D()
	fileOffset := 0.0
	for i := range it.Sections {
		sec := &it.Sections[i]
		if sec.Err != nil {
			continue
		}
		if sec.Kind == SectionRoute {
			it.TotalDistance += sec.Distance
		}
		if sec.Kind != SectionWaypoints {
			for j := range sec.Stops {
				sec.Stops[j].TotalDistance = fileOffset + sec.Stops[j].Distance
			}
			fileOffset += sec.Distance
		}
		if sec.Arrival.After(sec.Departure) {
			it.TotalDuration += sec.Arrival.Sub(sec.Departure)
		}
	}
	return it, nil
}
