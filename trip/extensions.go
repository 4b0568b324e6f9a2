package trip

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Garmin extension element names carried on route points. Matching is by
// local name so the trp/gpxx namespace prefixes in the file don't matter.
const (
	extDepartureTime = "DepartureTime"
	extStopDuration  = "StopDuration"
	extShapingPoint  = "ShapingPoint"
	extViaPoint      = "ViaPoint"
)

func extensionData(ext gpx.Extension, local string) (string, bool) {
	for _, n := range ext.Nodes {
		if v, ok := nodeData(n, local); ok {
			return v, true
		}
	}
	return "", false
}

func nodeData(n gpx.ExtensionNode, local string) (string, bool) {
	if n.XMLName.Local == local {
		return strings.TrimSpace(n.Data), true
	}
	for _, c := range n.Nodes {
		if v, ok := nodeData(c, local); ok {
			return v, true
		}
	}
	return "", false
}

func hasExtension(ext gpx.Extension, local string) bool {
	_, ok := extensionData(ext, local)
	return ok
}

// parseDepartureTime reads a trp:DepartureTime value (RFC 3339, Basecamp
// writes a trailing Z).
func parseDepartureTime(s string) (*time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// parseISODuration reads the PT…H…M…S subset of ISO 8601 durations that
// Basecamp writes for trp:StopDuration. Date components are not supported.
func parseISODuration(s string) (time.Duration, error) {
	orig := s
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "PT") || len(s) == 2 {
		return 0, fmt.Errorf("unsupported duration %q", orig)
	}
	s = s[2:]

	var total time.Duration
	num := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' {
			num.WriteRune(r)
			continue
		}
		v, err := strconv.ParseFloat(num.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("unsupported duration %q", orig)
		}
		num.Reset()
		switch r {
		case 'H':
			total += time.Duration(v * float64(time.Hour))
		case 'M':
			total += time.Duration(v * float64(time.Minute))
		case 'S':
			total += time.Duration(v * float64(time.Second))
		default:
			return 0, fmt.Errorf("unsupported duration %q", orig)
		}
	}
	if num.Len() != 0 {
		return 0, fmt.Errorf("unsupported duration %q", orig)
	}
	return total, nil
}

// shapingPoint reports whether a route point only bends the routed line:
// unnamed, "Via " prefixed, or tagged with a shaping/via extension.
func shapingPoint(p *gpx.GPXPoint) bool {
	if p.Name == "" {
		return true
	}
	if strings.HasPrefix(p.Name, "Via ") {
		return true
	}
	return hasExtension(p.Extensions, extShapingPoint) || hasExtension(p.Extensions, extViaPoint)
}
