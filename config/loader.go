package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ridgeline-labs/gpx-to-itinerary/itinerary"
)

// Config is the global application configuration
var Config AppConfig

// Defaults applied when config.yml is absent or leaves a field unset.
const (
	DefaultPort        = 8696
	DefaultMaxUploadMB = 16
	DefaultSpeed       = 45.0 // mph or km/h depending on the unit system
)

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error; every field has a default.
func LoadAppConfig() error {
	return LoadAppConfigFrom("")
}

// LoadAppConfigFrom loads configuration from an explicit path. With an
// empty path the default search locations are tried and a missing file is
// tolerated; an explicit path must exist.
func LoadAppConfigFrom(path string) error {
	paths := []string{"config.yml", "/etc/gpx-to-itinerary/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if path != "" {
				return fmt.Errorf("read config: %w", err)
			}
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}
	applyDefaults(&cfg)
	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Trip); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = DefaultMaxUploadMB
	}
	if cfg.Trip.Speed == 0 {
		cfg.Trip.Speed = DefaultSpeed
	}
	if cfg.Trip.WaypointSort == "" {
		cfg.Trip.WaypointSort = string(itinerary.SortByTrack)
	}
}

// applyEnv lets PORT override the configured server port, loading a .env
// file first when one exists.
func applyEnv(cfg *AppConfig) {
	_ = godotenv.Load()
	if s := os.Getenv("PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
}

// TripOptions converts the configured trip defaults into assembler options.
func (t TripConfig) TripOptions() itinerary.Options {
	opts := itinerary.Options{
		Speed:              t.Speed,
		Imperial:           !t.Metric,
		IgnoreTimes:        t.IgnoreTimes,
		DisplayCoordinates: t.Coordinates,
		MaxProjection:      t.MaxProjectionMeters,
		WaypointSort:       itinerary.SortMode(t.WaypointSort),
	}
	if t.StartOfDay != "" {
		if clock, err := time.Parse("15:04", t.StartOfDay); err == nil {
			opts.StartOfDay = time.Duration(clock.Hour())*time.Hour +
				time.Duration(clock.Minute())*time.Minute
		}
	}
	return opts
}

// MaxUploadBytes is the request body cap for the upload endpoint.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}
