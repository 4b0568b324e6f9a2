package geo

import "sort"

// Path is an ordered point sequence with a parallel slice of cumulative
// great-circle distances. Index i holds the distance traveled from index 0
// through index i, so cum[0] is always 0 and the slice is non-decreasing.
type Path struct {
	points []LatLon
	cum    []float64
}

// Projection is the result of mapping an off-path point onto a Path.
type Projection struct {
	Index  int     // path index of the nearest point
	Along  float64 // cumulative distance at that index, meters
	Offset float64 // distance from the query point to the path point, meters
}

// NewPath accumulates distances along the given points. Paths of length 0
// or 1 are valid.
func NewPath(points []LatLon) *Path {
	p := &Path{points: points}
	if len(points) == 0 {
		return p
	}
	p.cum = make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		p.cum[i] = p.cum[i-1] + points[i-1].DistanceTo(points[i])
	}
	return p
}

// Len returns the number of points on the path.
func (p *Path) Len() int { return len(p.points) }

// Total returns the full path length in meters.
func (p *Path) Total() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// PointAt returns the point at index i.
func (p *Path) PointAt(i int) LatLon { return p.points[i] }

// CumulativeAt returns the cumulative distance at index i in meters.
func (p *Path) CumulativeAt(i int) float64 { return p.cum[i] }

// NearestIndex returns the index whose cumulative distance is closest to
// target. Used when re-threading a multi-track day back onto its points.
func (p *Path) NearestIndex(target float64) int {
	if len(p.cum) == 0 {
		return -1
	}
	i := sort.SearchFloat64s(p.cum, target)
	if i == 0 {
		return 0
	}
	if i == len(p.cum) {
		return len(p.cum) - 1
	}
	if p.cum[i]-target < target-p.cum[i-1] {
		return i
	}
	return i - 1
}

// Project scans every path point and returns the one nearest to pt. The
// strict comparison keeps the earliest index when two points are
// equidistant, so a waypoint on an out-and-back track binds to the
// outbound pass. Returns false for an empty path.
func (p *Path) Project(pt LatLon) (Projection, bool) {
	if len(p.points) == 0 {
		return Projection{}, false
	}
	best := Projection{Index: 0, Along: p.cum[0], Offset: pt.DistanceTo(p.points[0])}
	for i := 1; i < len(p.points); i++ {
		d := pt.DistanceTo(p.points[i])
		if d < best.Offset {
			best = Projection{Index: i, Along: p.cum[i], Offset: d}
		}
	}
	return best, true
}
