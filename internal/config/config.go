// Package config loads service configuration from a YAML file and
// DIMENSIONAL_* environment variables.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Units  UnitsConfig  `mapstructure:"units"`
	Sim    SimConfig    `mapstructure:"sim"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error fatal"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// UnitsConfig points at an optional YAML catalog loaded on top of the built-in units.
type UnitsConfig struct {
	CatalogFile string `mapstructure:"catalog_file" validate:"omitempty,file"`
}

// SimConfig bounds /simulate requests and supplies their defaults.
type SimConfig struct {
	MaxSteps     int     `mapstructure:"max_steps" validate:"gt=0,lte=100000"`
	OriginLat    float64 `mapstructure:"origin_lat" validate:"gte=-90,lte=90"`
	OriginLon    float64 `mapstructure:"origin_lon" validate:"gte=-180,lte=180"`
	SafetyMargin float64 `mapstructure:"safety_margin" validate:"gte=0"` // meters
}
