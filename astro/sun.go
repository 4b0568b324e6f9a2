// Package astro wraps the astronomical collaborator that supplies daily
// sunrise and sunset bounds for a section.
package astro

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes returns local sunrise and sunset for the given coordinate on the
// given date, expressed in the date's location. ok is false when the sun
// never rises or never sets there (polar day or night); callers render that
// as unknown rather than failing.
func SunTimes(lat, lon float64, date time.Time) (rise, set time.Time, ok bool) {
	r, s := sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
	if r.IsZero() || s.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return r.In(date.Location()), s.In(date.Location()), true
}
