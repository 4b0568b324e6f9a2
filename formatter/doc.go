// Package formatter renders a computed itinerary as a Markdown table or
// HTML. The engine itself is agnostic to the text representation.
package formatter
