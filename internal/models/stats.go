package models

import "time"

// Stats is the summary produced for one group. Pointer fields are nil when
// the underlying data was missing (no elevations, no usable timestamps);
// zero would wrongly imply a measurement.
type Stats struct {
	Source GroupSource `json:"source"`

	PointCount int `json:"point_count"`

	StartElevation *float64 `json:"start_elevation,omitempty"` // meters
	EndElevation   *float64 `json:"end_elevation,omitempty"`
	MinElevation   *float64 `json:"min_elevation,omitempty"`
	MaxElevation   *float64 `json:"max_elevation,omitempty"`

	ElevationGain float64 `json:"elevation_gain"` // meters, never negative
	TotalDistance float64 `json:"total_distance"` // meters

	TotalTime  *time.Duration `json:"total_time,omitempty"`
	MovingTime *time.Duration `json:"moving_time,omitempty"`
}

// TrackSummary is the persisted form of Stats (server mode). Durations are
// stored as whole seconds; undefined duration and elevation fields are NULL
// in the row.
type TrackSummary struct {
	ID       int64  `json:"id" db:"id"`
	FileName string `json:"file_name" db:"file_name"`
	Label    string `json:"label" db:"label"`

	PointCount     int      `json:"point_count" db:"point_count"`
	StartElevation *float64 `json:"start_elevation,omitempty" db:"start_elevation"`
	EndElevation   *float64 `json:"end_elevation,omitempty" db:"end_elevation"`
	MinElevation   *float64 `json:"min_elevation,omitempty" db:"min_elevation"`
	MaxElevation   *float64 `json:"max_elevation,omitempty" db:"max_elevation"`
	ElevationGain  float64  `json:"elevation_gain" db:"elevation_gain"`
	TotalDistance  float64  `json:"total_distance" db:"total_distance"`
	TotalTimeS     *int64   `json:"total_time_s,omitempty" db:"total_time_s"`
	MovingTimeS    *int64   `json:"moving_time_s,omitempty" db:"moving_time_s"`

	CreatedAt string `json:"created_at,omitempty" db:"created_at"`
}

// SummaryFilter holds query parameters for listing stored summaries.
type SummaryFilter struct {
	FileName string `form:"fileName"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
