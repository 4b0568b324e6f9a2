// Package geo provides great-circle distance math, unit conversion, and
// cumulative-distance paths used to thread waypoints onto tracks.
package geo
