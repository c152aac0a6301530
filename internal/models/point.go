package models

import "time"

// Point represents one recorded GPS fix. Elevation and Time are nil when the
// source file omitted them; samples are ordered by recording sequence and are
// never re-sorted.
type Point struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Elevation *float64   `json:"elevation,omitempty"` // meters
	Time      *time.Time `json:"time,omitempty"`
}

// HasElevation reports whether the point carries an elevation value.
func (p Point) HasElevation() bool {
	return p.Elevation != nil
}

// HasTime reports whether the point carries a timestamp.
func (p Point) HasTime() bool {
	return p.Time != nil
}

// Segment is the smallest ordered grouping of points in a track file.
type Segment struct {
	Points []Point `json:"points"`
}

// Track is an ordered sequence of segments with an optional name.
type Track struct {
	Name     string    `json:"name,omitempty"`
	Segments []Segment `json:"segments"`
}

// File is one decoded input file: ordered tracks, original order preserved.
type File struct {
	Name   string  `json:"name"`
	Tracks []Track `json:"tracks"`
}
