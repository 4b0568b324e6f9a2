// Package gpxitinerary is the web shell around the itinerary engine. It
// serves an upload form, converts posted GPX files into Markdown or HTML
// itineraries, and exposes health and Prometheus metrics endpoints.
//
// The engine itself lives in the trip, itinerary, and formatter packages
// and has no dependency on this package.
package gpxitinerary
