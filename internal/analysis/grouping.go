package analysis

import (
	"fmt"

	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/models"
)

// ResolveGroups reshapes the file → track → segment hierarchy into the flat,
// ordered list of sample groups the accumulator runs over.
//
// Default: one group per segment. JoinSegments: one group per track, its
// segments concatenated in order. JoinTracks: every track of every input
// joined into a single group, in input order. Concatenation introduces no
// special handling at the seams; the samples are simply adjacent.
func ResolveGroups(files []models.File, cfg *config.Config) []models.Group {
	if cfg.JoinTracks {
		return []models.Group{joinAll(files)}
	}

	var groups []models.Group
	for fnum, file := range files {
		for tnum, track := range file.Tracks {
			name := track.Name
			if name == "" {
				name = file.Name
			}
			if name == "" {
				name = "<unnamed>"
			}

			if cfg.JoinSegments {
				var points []models.Point
				for _, seg := range track.Segments {
					points = append(points, seg.Points...)
				}
				groups = append(groups, models.Group{
					Source: models.GroupSource{
						FileIndex:    fnum,
						TrackIndex:   tnum,
						SegmentIndex: -1,
						Label:        fmt.Sprintf("track %d: %s", tnum+1, name),
					},
					Points: points,
				})
				continue
			}

			for snum, seg := range track.Segments {
				groups = append(groups, models.Group{
					Source: models.GroupSource{
						FileIndex:    fnum,
						TrackIndex:   tnum,
						SegmentIndex: snum,
						Label:        fmt.Sprintf("track %d: %s, segment %d", tnum+1, name, snum+1),
					},
					Points: seg.Points,
				})
			}
		}
	}
	return groups
}

// joinAll collapses every input into one global group.
func joinAll(files []models.File) models.Group {
	var points []models.Point
	for _, file := range files {
		for _, track := range file.Tracks {
			for _, seg := range track.Segments {
				points = append(points, seg.Points...)
			}
		}
	}

	label := "all tracks"
	fileIdx := -1
	if len(files) == 1 {
		fileIdx = 0
		if files[0].Name != "" {
			label = files[0].Name
		}
	}

	return models.Group{
		Source: models.GroupSource{
			FileIndex:    fileIdx,
			TrackIndex:   -1,
			SegmentIndex: -1,
			Label:        label,
		},
		Points: points,
	}
}
