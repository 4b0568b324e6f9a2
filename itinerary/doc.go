// Package itinerary turns parsed GPX data into an ordered stop schedule:
// cumulative distance, ETA, layovers, fuel-range tracking, and per-day
// sunrise/sunset bounds.
package itinerary
