package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ridgeline-labs/gpx-to-itinerary/geo"
	"github.com/ridgeline-labs/gpx-to-itinerary/itinerary"
)

// Builder renders itineraries. Construct once per request with the caller's
// display options.
type Builder struct {
	Imperial    bool
	Coordinates bool // include a Lat,Lon column
}

// NewBuilder creates a builder for the given unit system and coordinate
// display choice.
func NewBuilder(imperial, coordinates bool) *Builder {
	return &Builder{Imperial: imperial, Coordinates: coordinates}
}

// BuildMarkdown renders the full itinerary as a Markdown document with one
// table per section.
func (b *Builder) BuildMarkdown(it *itinerary.Itinerary) []byte {
	var buf bytes.Buffer

	if it.Name != "" {
		fmt.Fprintf(&buf, "# %s\n", it.Name)
	}
	if it.Creator != "" {
		fmt.Fprintf(&buf, "## %s\n", it.Creator)
	}
	if it.Description != "" {
		fmt.Fprintf(&buf, "\n%s\n", it.Description)
	}

	for i := range it.Sections {
		b.writeSection(&buf, &it.Sections[i])
	}

	buf.WriteString("\n")
	if it.MovingTime > 0 {
		fmt.Fprintf(&buf, "- Total moving time: %s\n", formatDuration(it.MovingTime))
	}
	if it.TotalDuration > 0 {
		fmt.Fprintf(&buf, "- Total time: %s\n", formatDuration(it.TotalDuration))
	}
	fmt.Fprintf(&buf, "- Total distance: %s\n", geo.FormatDistance(it.TotalDistance, b.Imperial))
	for _, note := range it.Notes {
		fmt.Fprintf(&buf, "- Note: %s\n", note)
	}
	return buf.Bytes()
}

func (b *Builder) writeSection(buf *bytes.Buffer, sec *itinerary.Section) {
	label := "Track"
	switch sec.Kind {
	case itinerary.SectionRoute:
		label = "Route"
	case itinerary.SectionWaypoints:
		label = "Waypoints"
	}
	fmt.Fprintf(buf, "\n## %s: %s\n\n", label, sec.Name)

	if sec.Err != nil {
		fmt.Fprintf(buf, "- skipped: %s\n", sec.Err)
		return
	}

	if b.Coordinates {
		buf.WriteString("|      Lat,Lon       | Description                    |  Dist. | G |   ETA | Layover | Notes\n")
		buf.WriteString("| :----------------: | :----------------------------- | -----: | :-: | ----: | ------: | :----\n")
	} else {
		buf.WriteString("| Description                    |  Dist. | G |   ETA | Layover | Notes\n")
		buf.WriteString("| :----------------------------- | -----: | :-: | ----: | ------: | :----\n")
	}

	for i := range sec.Stops {
		b.writeStop(buf, sec, &sec.Stops[i])
	}

	buf.WriteString("\n")
	if sec.Sunrise != nil && sec.Sunset != nil {
		fmt.Fprintf(buf, "- Sunrise: %s, Sunset: %s\n",
			sec.Sunrise.Format("15:04"), sec.Sunset.Format("15:04"))
	}
	if sec.Kind != itinerary.SectionWaypoints {
		fmt.Fprintf(buf, "- Depart %s, arrive %s\n",
			sec.Departure.Format("Mon Jan 2 15:04"), sec.Arrival.Format("Mon Jan 2 15:04"))
		fmt.Fprintf(buf, "- Distance: %s\n", geo.FormatDistance(sec.Distance, b.Imperial))
	}
}

func (b *Builder) writeStop(buf *bytes.Buffer, sec *itinerary.Section, s *itinerary.Stop) {
	name := strings.ReplaceAll(s.Name, "\n", " ")

	// Once a fuel reset happened this section, riders care about range
	// since the last fill-up, so show range/cumulative pairs.
	dist := fmt.Sprintf("%.1f", geo.DisplayDistance(s.Distance, b.Imperial))
	if sec.FuelReset {
		dist = fmt.Sprintf("%.1f/%.1f",
			geo.DisplayDistance(s.FuelDistance, b.Imperial),
			geo.DisplayDistance(s.Distance, b.Imperial))
	}

	gas := ""
	if s.FuelStop {
		gas = "G"
	}
	eta := ""
	if !s.ETA.IsZero() {
		eta = s.ETA.Format("15:04")
	}

	if b.Coordinates {
		fmt.Fprintf(buf, "| %-8.4f,%.4f | %-30.30s | %6s | %1s | %5s | %7s | %s\n",
			s.Lat, s.Lon, name, dist, gas, eta, formatDuration(s.Layover), s.Symbol)
		return
	}
	fmt.Fprintf(buf, "| %-30.30s | %6s | %1s | %5s | %7s | %s\n",
		name, dist, gas, eta, formatDuration(s.Layover), s.Symbol)
}

// formatDuration renders a duration as "45m" or "1h30m"; zero renders
// empty so layover cells stay blank for touch-and-go stops.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
