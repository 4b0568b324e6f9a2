package geo

import (
	"math"
	"testing"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	if d := Distance(48.2081743, 16.3738189, 48.2081743, 16.3738189); d != 0 {
		t.Errorf("expected exactly 0 for identical coordinates, got %v", d)
	}
}

func TestDistanceKnownSeparations(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		want       float64 // meters
		tolerance  float64
	}{
		{
			name: "short hop across Vienna",
			lat1: 48.2081743, lon1: 16.3738189,
			lat2: 48.2181743, lon2: 16.4738189,
			want:      7510,
			tolerance: 100,
		},
		{
			name: "one degree of longitude on the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 1,
			want:      111195,
			tolerance: 50,
		},
		{
			name: "meters-scale separation",
			lat1: 37.0, lon1: -122.0,
			lat2: 37.00001, lon2: -122.0,
			want:      1.11,
			tolerance: 0.05,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("expected %v±%v m, got %v", tt.want, tt.tolerance, got)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Distance(40.0, -75.0, 41.0, -74.0)
	b := Distance(41.0, -74.0, 40.0, -75.0)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance should be symmetric: %v vs %v", a, b)
	}
}

func TestUnitConversions(t *testing.T) {
	if got := Miles(MetersPerMile); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected 1 mile, got %v", got)
	}
	if got := Kilometers(2500); got != 2.5 {
		t.Errorf("expected 2.5 km, got %v", got)
	}
	if got := DisplayDistance(MetersPerMile, true); math.Abs(got-1) > 1e-12 {
		t.Errorf("imperial display: expected 1, got %v", got)
	}
	if got := DisplayDistance(1000, false); got != 1 {
		t.Errorf("metric display: expected 1, got %v", got)
	}
}

func TestFormatDistance(t *testing.T) {
	if got := FormatDistance(MetersPerMile*10, true); got != "10.0 mi" {
		t.Errorf("expected %q, got %q", "10.0 mi", got)
	}
	if got := FormatDistance(12345, false); got != "12.3 km" {
		t.Errorf("expected %q, got %q", "12.3 km", got)
	}
}

func TestFormatSpeed(t *testing.T) {
	if got := FormatSpeed(45, true); got != "45 mph" {
		t.Errorf("expected %q, got %q", "45 mph", got)
	}
	if got := FormatSpeed(72, false); got != "72 km/h" {
		t.Errorf("expected %q, got %q", "72 km/h", got)
	}
}

func TestFormatElevation(t *testing.T) {
	if got := FormatElevation(100, false); got != "100 m" {
		t.Errorf("expected %q, got %q", "100 m", got)
	}
	if got := FormatElevation(100, true); got != "328 ft" {
		t.Errorf("expected %q, got %q", "328 ft", got)
	}
}

func TestSpeedMetersPerMinute(t *testing.T) {
	// 30 mph covers 10 miles in 20 minutes
	mpm := SpeedMetersPerMinute(30, true)
	if got := 10 * MetersPerMile / mpm; math.Abs(got-20) > 1e-9 {
		t.Errorf("expected 20 minutes for 10 mi at 30 mph, got %v", got)
	}
	// 60 km/h covers one kilometer per minute
	if got := SpeedMetersPerMinute(60, false); got != 1000 {
		t.Errorf("expected 1000 m/min at 60 km/h, got %v", got)
	}
}
