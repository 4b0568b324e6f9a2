package itinerary

import (
	"errors"
	"time"
)

// SortMode orders standalone waypoint collections for presentation. It is
// applied after assembly and never affects computed times.
type SortMode string

const (
	SortByTrack    SortMode = "track"    // projected distance within the nearest section (file order when nothing to project onto)
	SortByTotal    SortMode = "total"    // cumulative distance across the whole file
	SortByName     SortMode = "name"     // alphabetical
	SortByCategory SortMode = "category" // inferred category, then name
)

// Defaults applied by Options.withDefaults.
const (
	DefaultStartOfDay    = 9*time.Hour + 15*time.Minute
	DefaultMaxProjection = 5000.0 // meters; waypoints farther from every track point are dropped

	// A real waypoint this close to a track endpoint suppresses the
	// synthesized pseudo-stop there.
	pseudoStopSuppression = 200.0 // meters
)

var (
	// ErrZeroSpeed rejects a non-positive average speed, which would
	// produce infinite travel time.
	ErrZeroSpeed = errors.New("average speed must be positive")

	// ErrNoPoints marks a section whose source carries zero points.
	ErrNoPoints = errors.New("no points")
)

// Options is the immutable configuration one Build call runs under.
type Options struct {
	Speed              float64    // average travel speed, mph or km/h per Imperial
	Imperial           bool       // statute miles when true, kilometers otherwise
	DepartAt           *time.Time // departure override for the first section
	IgnoreTimes        bool       // ignore source-embedded timing, recompute uniformly
	DisplayCoordinates bool       // carried through for the formatting layer
	StartOfDay         time.Duration
	MaxProjection      float64 // meters
	WaypointSort       SortMode
}

func (o Options) withDefaults() Options {
	if o.StartOfDay == 0 {
		o.StartOfDay = DefaultStartOfDay
	}
	if o.MaxProjection == 0 {
		o.MaxProjection = DefaultMaxProjection
	}
	if o.WaypointSort == "" {
		o.WaypointSort = SortByTrack
	}
	return o
}

// Stop is one row of the final itinerary. Stops are created fresh for each
// Build and never mutated afterwards; slice order is significant.
type Stop struct {
	Name          string
	Lat           float64
	Lon           float64
	Leg           float64 // meters since the previous stop
	Distance      float64 // cumulative meters from section start
	TotalDistance float64 // cumulative meters across the whole file
	FuelDistance  float64 // meters since the last fuel stop
	FuelStop      bool
	Category      Category
	ETA           time.Time
	Layover       time.Duration
	Departure     time.Time
	Symbol        string
	Pseudo        bool // synthesized track start/end marker
}

// SectionKind tags the stop source variant feeding the assembler.
type SectionKind string

const (
	SectionRoute     SectionKind = "route"
	SectionTrack     SectionKind = "track"
	SectionWaypoints SectionKind = "waypoints"
)

// Section is one travel day: one Track or one Route processed with its own
// departure time.
type Section struct {
	Name      string
	Kind      SectionKind
	Stops     []Stop
	Departure time.Time
	Arrival   time.Time // ETA at the final stop
	Distance  float64   // meters
	FuelReset bool      // a mid-section fuel stop occurred; show range/cumulative pairs
	Sunrise   *time.Time
	Sunset    *time.Time
	Err       error // section-level input error; other sections still build
}

// Itinerary is the complete converted file.
type Itinerary struct {
	Name          string
	Creator       string
	Description   string
	Sections      []Section
	TotalDistance float64 // meters, summed over completed sections
	TotalDuration time.Duration
	MovingTime    time.Duration // from track timestamps, zero when absent
	Notes         []string      // file-level informational notes (projection misses etc.)
}
