package itinerary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ridgeline-labs/gpx-to-itinerary/astro"
	"github.com/ridgeline-labs/gpx-to-itinerary/geo"
	"github.com/ridgeline-labs/gpx-to-itinerary/trip"
)

// candidate is the common stop-source tuple both section variants feed the
// assembler: route points in file order, or waypoints re-sorted by their
// projected distance along a track.
type candidate struct {
	name      string
	symbol    string
	point     geo.LatLon
	distance  float64 // cumulative meters from section start
	departure *time.Time
	layover   *time.Duration
	fileOrder int
	pseudo    bool
}

type assembler struct {
	opts  Options
	speed float64 // meters per minute
}

// travelTime converts a leg distance to clock time at the configured
// average speed, rounded to whole minutes.
func (a *assembler) travelTime(meters float64) time.Duration {
	return time.Duration(math.Round(meters/a.speed)) * time.Minute
}

// departureFor establishes a section's starting ETA: the explicit override
// for the first section, else the section's own recorded timestamp, else
// the configured start-of-day on the appropriate calendar day. Later days
// never carry the previous section's ending clock; riders sleep.
func (a *assembler) departureFor(day int, recorded time.Time, baseDate *time.Time) time.Time {
	var dep time.Time
	switch {
	case day == 0 && a.opts.DepartAt != nil:
		dep = *a.opts.DepartAt
	case !a.opts.IgnoreTimes && !recorded.IsZero():
		dep = recorded
	default:
		base := *baseDate
		if base.IsZero() {
			base = time.Now()
		}
		midnight := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
		dep = midnight.AddDate(0, 0, day).Add(a.opts.StartOfDay)
	}
	if baseDate.IsZero() {
		*baseDate = dep
	}
	return dep
}

// assemble walks an ordered candidate list, threading cumulative distance,
// ETA, layover, and fuel-range state through every stop.
func (a *assembler) assemble(name string, kind SectionKind, cands []candidate, departure time.Time) Section {
	sec := Section{Name: name, Kind: kind, Departure: departure, Arrival: departure}
	clock := departure
	lastCum := 0.0
	fuelAnchor := 0.0

	for i, c := range cands {
		leg := c.distance - lastCum
		if leg < 0 {
			leg = 0
		}
		eta := clock.Add(a.travelTime(leg))

		cls := Classify(c.symbol, c.name)
		if c.pseudo {
			cls = Classification{Category: CategoryWaypoint}
		}
		layover := cls.Layover
		if c.layover != nil && !a.opts.IgnoreTimes {
			layover = *c.layover
		}
		depart := eta.Add(layover)
		if c.departure != nil && !a.opts.IgnoreTimes && c.departure.After(eta) {
			depart = *c.departure
		}

		stop := Stop{
			Name:         c.name,
			Lat:          c.point.Lat,
			Lon:          c.point.Lon,
			Leg:          leg,
			Distance:     c.distance,
			FuelDistance: c.distance - fuelAnchor,
			Category:     cls.Category,
			ETA:          eta,
			Layover:      depart.Sub(eta),
			Departure:    depart,
			Symbol:       c.symbol,
			Pseudo:       c.pseudo,
		}
		// Full tank at the start of the day; every gas stop resets the range.
		stop.FuelStop = i == 0 || cls.Category == CategoryGas
		if stop.FuelStop {
			if i > 0 {
				sec.FuelReset = true
			}
			fuelAnchor = c.distance
		}
		sec.Stops = append(sec.Stops, stop)

		clock = depart
		lastCum = c.distance
		sec.Arrival = eta
	}

	sec.Distance = lastCum
	if len(cands) > 0 {
		if rise, set, ok := astro.SunTimes(cands[0].point.Lat, cands[0].point.Lon, departure); ok {
			sec.Sunrise = &rise
			sec.Sunset = &set
		}
	}
	return sec
}

// routeSection builds a section from a Route's points in file order.
// Shaping points contribute to cumulative distance only.
func (a *assembler) routeSection(r *trip.Route, day int, baseDate *time.Time) Section {
	if len(r.Points) == 0 {
		return Section{
			Name: r.Name,
			Kind: SectionRoute,
			Err:  fmt.Errorf("route %q: %w", r.Name, ErrNoPoints),
		}
	}

	latlons := make([]geo.LatLon, len(r.Points))
	for i := range r.Points {
		latlons[i] = r.Points[i].LatLon
	}
	path := geo.NewPath(latlons)

	var cands []candidate
	for i := range r.Points {
		p := &r.Points[i]
		if p.Shaping {
			continue
		}
		cands = append(cands, candidate{
			name:      p.Name,
			symbol:    p.Symbol,
			point:     p.LatLon,
			distance:  path.CumulativeAt(i),
			departure: p.Departure,
			layover:   p.StopDuration,
			fileOrder: i,
		})
	}

	var recorded time.Time
	if first := &r.Points[0]; first.Departure != nil {
		recorded = *first.Departure
	} else {
		recorded = first.Time
	}
	dep := a.departureFor(day, recorded, baseDate)
	return a.assemble(r.Name, SectionRoute, cands, dep)
}

// projectionMiss tracks, per waypoint, whether any track accepted it, and
// the nearest rejection otherwise. A waypoint outside the threshold on
// every track yields exactly one file-level note.
type projectionMiss struct {
	bound         bool
	nearestTrack  string
	nearestOffset float64
}

// trackSection builds a section from a Track's geometry plus every
// waypoint that projects onto it within the configured threshold. The
// track's own points only accumulate distance; they are not listed.
func (a *assembler) trackSection(trk *trip.Track, waypoints []trip.Waypoint, day int, baseDate *time.Time, misses []projectionMiss) Section {
	pts := trk.Points()
	if len(pts) == 0 {
		return Section{
			Name: trk.Name,
			Kind: SectionTrack,
			Err:  fmt.Errorf("track %q: %w", trk.Name, ErrNoPoints),
		}
	}

	latlons := make([]geo.LatLon, len(pts))
	for i := range pts {
		latlons[i] = pts[i].LatLon
	}
	path := geo.NewPath(latlons)

	var cands []candidate
	for i := range waypoints {
		w := &waypoints[i]
		proj, ok := path.Project(w.LatLon)
		if !ok {
			continue
		}
		if proj.Offset > a.opts.MaxProjection {
			m := &misses[i]
			if m.nearestTrack == "" || proj.Offset < m.nearestOffset {
				m.nearestTrack = trk.Name
				m.nearestOffset = proj.Offset
			}
			continue
		}
		misses[i].bound = true
		cands = append(cands, candidate{
			name:      w.Name,
			symbol:    w.Symbol,
			point:     w.LatLon,
			distance:  proj.Along,
			fileOrder: i,
		})
	}
	// Waypoints arrive unordered; re-sort by projected distance. The stable
	// sort keeps file order on ties.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].distance < cands[j].distance })

	if len(cands) == 0 || cands[0].distance > pseudoStopSuppression {
		start := candidate{
			name:   trk.Name + " (start)",
			point:  latlons[0],
			pseudo: true,
		}
		cands = append([]candidate{start}, cands...)
	}
	if last := path.Total(); len(cands) == 0 || last-cands[len(cands)-1].distance > pseudoStopSuppression {
		cands = append(cands, candidate{
			name:     trk.Name + " (end)",
			point:    latlons[len(latlons)-1],
			distance: path.Total(),
			pseudo:   true,
		})
	}

	dep := a.departureFor(day, pts[0].Time, baseDate)
	return a.assemble(trk.Name, SectionTrack, cands, dep)
}

// waypointSection presents the file's waypoints when no track exists to
// schedule them against. Display distances come from the route geometry
// when the file has routes: per-route distance at the nearest route point,
// and the cumulative position across all routes. Without routes the
// waypoints are walked in file order. No times are computed.
func (a *assembler) waypointSection(waypoints []trip.Waypoint, routes []trip.Route) Section {
	sec := Section{Name: "Waypoints", Kind: SectionWaypoints}

	type routePath struct {
		path   *geo.Path
		offset float64 // combined length of the earlier routes
	}
	var paths []routePath
	combined := 0.0
	for i := range routes {
		pts := routes[i].Points
		latlons := make([]geo.LatLon, len(pts))
		for j := range pts {
			latlons[j] = pts[j].LatLon
		}
		p := geo.NewPath(latlons)
		paths = append(paths, routePath{path: p, offset: combined})
		combined += p.Total()
	}

	var prev geo.LatLon
	fileCum := 0.0
	for i := range waypoints {
		w := &waypoints[i]
		cls := Classify(w.Symbol, w.Name)
		stop := Stop{
			Name:     w.Name,
			Lat:      w.Lat,
			Lon:      w.Lon,
			Category: cls.Category,
			Layover:  cls.Layover,
			Symbol:   w.Symbol,
		}
		if len(paths) > 0 {
			best := -1
			var bestProj geo.Projection
			for j := range paths {
				proj, ok := paths[j].path.Project(w.LatLon)
				if !ok {
					continue
				}
				if best < 0 || proj.Offset < bestProj.Offset {
					best, bestProj = j, proj
				}
			}
			if best >= 0 {
				stop.Distance = bestProj.Along
				stop.TotalDistance = paths[best].offset + bestProj.Along
			}
		} else {
			if i > 0 {
				fileCum += prev.DistanceTo(w.LatLon)
			}
			stop.Distance = fileCum
			stop.TotalDistance = fileCum
			prev = w.LatLon
		}
		sec.Stops = append(sec.Stops, stop)
	}
	SortStops(sec.Stops, a.opts.WaypointSort)
	return sec
}

// SortStops reorders stops for presentation. Sorting happens after all
// times are computed and never changes them.
func SortStops(stops []Stop, mode SortMode) {
	switch mode {
	case SortByName:
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Name < stops[j].Name })
	case SortByCategory:
		sort.SliceStable(stops, func(i, j int) bool {
			if stops[i].Category != stops[j].Category {
				return stops[i].Category < stops[j].Category
			}
			return stops[i].Name < stops[j].Name
		})
	case SortByTrack:
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Distance < stops[j].Distance })
	case SortByTotal:
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].TotalDistance < stops[j].TotalDistance })
	}
}
