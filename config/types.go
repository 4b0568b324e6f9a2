package config

// ServerConfig contains web server configuration
type ServerConfig struct {
	Port        int `yaml:"port" validate:"gt=0"`
	MaxUploadMB int `yaml:"maxUploadMB" validate:"gte=0"`
	RateLimit   int `yaml:"rateLimit" validate:"gte=0"` // requests per minute per client, 0 disables
}

// TripConfig contains itinerary calculation defaults. Request parameters
// override these per conversion.
type TripConfig struct {
	Speed               float64 `yaml:"speed" validate:"gte=0"`
	Metric              bool    `yaml:"metric"`
	IgnoreTimes         bool    `yaml:"ignoreTimes"`
	Coordinates         bool    `yaml:"coordinates"`
	StartOfDay          string  `yaml:"startOfDay" validate:"omitempty,datetime=15:04"`
	MaxProjectionMeters float64 `yaml:"maxProjectionMeters" validate:"gte=0"`
	WaypointSort        string  `yaml:"waypointSort" validate:"omitempty,oneof=track total name category"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Trip   TripConfig   `yaml:"trip"`
}
