package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ridgeline-labs/gpx-to-itinerary/itinerary"
)

func loadFromDir(t *testing.T, yml string) error {
	t.Helper()
	dir := t.TempDir()
	if yml != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return LoadAppConfig()
}

func TestLoadAppConfigDefaults(t *testing.T) {
	if err := loadFromDir(t, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Config.Server.Port != DefaultPort {
		t.Errorf("port = %d, want %d", Config.Server.Port, DefaultPort)
	}
	if Config.Server.MaxUploadMB != DefaultMaxUploadMB {
		t.Errorf("maxUploadMB = %d, want %d", Config.Server.MaxUploadMB, DefaultMaxUploadMB)
	}
	if Config.Trip.Speed != DefaultSpeed {
		t.Errorf("speed = %v, want %v", Config.Trip.Speed, DefaultSpeed)
	}
	if Config.Trip.WaypointSort != string(itinerary.SortByTrack) {
		t.Errorf("waypointSort = %q, want %q", Config.Trip.WaypointSort, itinerary.SortByTrack)
	}
}

func TestLoadAppConfigFromFile(t *testing.T) {
	yml := `
server:
  port: 9090
  maxUploadMB: 4
  rateLimit: 30
trip:
  speed: 55
  metric: true
  startOfDay: "08:30"
  waypointSort: name
`
	if err := loadFromDir(t, yml); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", Config.Server.Port)
	}
	if Config.Server.MaxUploadBytes() != 4<<20 {
		t.Errorf("maxUploadBytes = %d, want %d", Config.Server.MaxUploadBytes(), 4<<20)
	}
	if !Config.Trip.Metric {
		t.Error("expected metric units")
	}
}

func TestLoadAppConfigRejectsBadSort(t *testing.T) {
	yml := `
server:
  port: 8080
trip:
  waypointSort: distance
`
	if err := loadFromDir(t, yml); err == nil {
		t.Fatal("expected validation error for unknown sort mode")
	}
}

func TestExplicitConfigPathMustExist(t *testing.T) {
	if err := LoadAppConfigFrom(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "7777")
	if err := loadFromDir(t, "server:\n  port: 9090\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Config.Server.Port != 7777 {
		t.Errorf("port = %d, want env override 7777", Config.Server.Port)
	}
}

func TestTripOptionsBridge(t *testing.T) {
	cfg := TripConfig{
		Speed:               50,
		Metric:              true,
		IgnoreTimes:         true,
		StartOfDay:          "08:30",
		MaxProjectionMeters: 1000,
		WaypointSort:        "category",
	}
	opts := cfg.TripOptions()
	if opts.Speed != 50 || opts.Imperial || !opts.IgnoreTimes {
		t.Errorf("unexpected options: %+v", opts)
	}
	if want := 8*time.Hour + 30*time.Minute; opts.StartOfDay != want {
		t.Errorf("startOfDay = %v, want %v", opts.StartOfDay, want)
	}
	if opts.MaxProjection != 1000 {
		t.Errorf("maxProjection = %v, want 1000", opts.MaxProjection)
	}
	if opts.WaypointSort != itinerary.SortByCategory {
		t.Errorf("waypointSort = %v, want category", opts.WaypointSort)
	}
}
