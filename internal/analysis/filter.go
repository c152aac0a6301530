package analysis

import (
	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/models"
)

// KeepPoint decides whether a sample survives the elevation pre-filter.
// Samples without an elevation are never discarded here; the accumulator
// handles the optional-field case itself.
func KeepPoint(p models.Point, cfg *config.Config) bool {
	if !p.HasElevation() {
		return true
	}
	if cfg.FilterZeroElevation && *p.Elevation == 0.0 {
		return false
	}
	if cfg.FilterElevationBelow != nil && *p.Elevation < *cfg.FilterElevationBelow {
		return false
	}
	return true
}

// FilterPoints applies KeepPoint to an ordered sequence, preserving the
// relative order of surviving samples.
func FilterPoints(points []models.Point, cfg *config.Config) []models.Point {
	kept := make([]models.Point, 0, len(points))
	for _, p := range points {
		if KeepPoint(p, cfg) {
			kept = append(kept, p)
		}
	}
	return kept
}

// FilterFiles applies the point filter across the whole input hierarchy.
// The shape (files, tracks, segments) is untouched; only samples drop out,
// so segments emptied by filtering still produce a group downstream.
func FilterFiles(files []models.File, cfg *config.Config) []models.File {
	out := make([]models.File, 0, len(files))
	for _, f := range files {
		file := models.File{Name: f.Name}
		for _, t := range f.Tracks {
			track := models.Track{Name: t.Name}
			for _, s := range t.Segments {
				track.Segments = append(track.Segments, models.Segment{
					Points: FilterPoints(s.Points, cfg),
				})
			}
			file.Tracks = append(file.Tracks, track)
		}
		out = append(out, file)
	}
	return out
}
