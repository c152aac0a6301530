package config

import (
	"os"
	"time"
)

// Engine threshold defaults (meters, meters, seconds).
const (
	DefaultMinElevationGain = 10.0
	DefaultMinDistance      = 1.0
	DefaultStandstillTime   = 10 * time.Second
)

// Config holds the analysis thresholds and grouping flags. It is built once
// per run and shared read-only by every group; nothing mutates it after Load.
type Config struct {
	// MinElevationGain is the minimum upward change in elevation (meters)
	// for a sample to contribute to elevation gain.
	MinElevationGain float64

	// MinDistance is the minimum change in position (meters) for a sample
	// to advance the distance anchor and its accumulators.
	MinDistance float64

	// StandstillTime is how long the position may stay within MinDistance
	// before the elapsed gap stops counting as moving time.
	StandstillTime time.Duration

	// JoinSegments analyses each track as one sequence instead of one
	// sequence per segment. JoinTracks joins everything into a single
	// sequence and implies JoinSegments.
	JoinSegments bool
	JoinTracks   bool

	// FilterZeroElevation discards samples whose elevation is exactly 0.
	// FilterElevationBelow, when set, discards samples below the threshold.
	// Samples without an elevation are never discarded by either rule.
	FilterZeroElevation  bool
	FilterElevationBelow *float64

	// Server mode settings.
	Port   string
	DBPath string
}

// Normalize applies flag implications and returns the receiver for chaining.
func (c *Config) Normalize() *Config {
	if c.JoinTracks {
		c.JoinSegments = true
	}
	return c
}

// Load builds a Config with engine defaults and server settings from the
// environment.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/trailstats.db"
	}

	return &Config{
		MinElevationGain: DefaultMinElevationGain,
		MinDistance:      DefaultMinDistance,
		StandstillTime:   DefaultStandstillTime,
		Port:             port,
		DBPath:           dbPath,
	}
}
