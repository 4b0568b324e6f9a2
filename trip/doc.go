// Package trip holds the parsed GPX model the itinerary engine consumes:
// tracks, routes, and waypoints, with Garmin trip-extension timing already
// extracted. Raw XML handling is delegated to gpxgo.
package trip
