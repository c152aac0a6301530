package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/models"
)

func TestKeepPointZeroElevation(t *testing.T) {
	cfg := &config.Config{FilterZeroElevation: true}

	assert.False(t, KeepPoint(ptAt(0, elev(0), nil), cfg), "exactly 0 is discarded")
	assert.True(t, KeepPoint(ptAt(0, elev(-0.0001), nil), cfg), "near-zero is kept")
	assert.True(t, KeepPoint(ptAt(0, elev(1), nil), cfg))
	assert.True(t, KeepPoint(ptAt(0, nil, nil), cfg), "absent elevation is never filtered")
}

func TestKeepPointElevationBelow(t *testing.T) {
	threshold := 50.0
	cfg := &config.Config{FilterElevationBelow: &threshold}

	assert.False(t, KeepPoint(ptAt(0, elev(49.9), nil), cfg))
	assert.True(t, KeepPoint(ptAt(0, elev(50), nil), cfg), "threshold itself is kept")
	assert.True(t, KeepPoint(ptAt(0, nil, nil), cfg))
}

func TestKeepPointNoFilters(t *testing.T) {
	cfg := &config.Config{}

	assert.True(t, KeepPoint(ptAt(0, elev(0), nil), cfg))
	assert.True(t, KeepPoint(ptAt(0, elev(-100), nil), cfg))
}

func TestFilterPointsPreservesOrder(t *testing.T) {
	cfg := &config.Config{FilterZeroElevation: true}
	points := []models.Point{
		ptAt(1, elev(10), nil),
		ptAt(2, elev(0), nil),
		ptAt(3, elev(20), nil),
		ptAt(4, elev(0), nil),
		ptAt(5, nil, nil),
	}

	kept := FilterPoints(points, cfg)

	assert.Len(t, kept, 3)
	assert.Equal(t, points[0], kept[0])
	assert.Equal(t, points[2], kept[1])
	assert.Equal(t, points[4], kept[2])
}

func TestFilteredSamplesDoNotTouchExtremes(t *testing.T) {
	// A zero-elevation sample is discarded before the accumulator ever
	// sees it, so it cannot become the minimum.
	cfg := testConfig()
	cfg.FilterZeroElevation = true

	group := models.Group{Points: FilterPoints([]models.Point{
		ptAt(0, elev(100), tstamp(0)),
		ptAt(5, elev(0), tstamp(5)),
		ptAt(10, elev(110), tstamp(10)),
	}, cfg)}

	st := AnalyzeGroup(group, cfg)

	assert.Equal(t, 2, st.PointCount)
	assert.Equal(t, 100.0, *st.MinElevation)
	assert.Equal(t, 110.0, *st.MaxElevation)
}

func TestFilterFilesKeepsShape(t *testing.T) {
	cfg := &config.Config{FilterZeroElevation: true}
	files := []models.File{{
		Name: "a.gpx",
		Tracks: []models.Track{{
			Segments: []models.Segment{
				{Points: []models.Point{ptAt(0, elev(0), nil)}},
				{Points: []models.Point{ptAt(1, elev(5), nil)}},
			},
		}},
	}}

	filtered := FilterFiles(files, cfg)

	// The emptied segment survives as an empty segment.
	assert.Len(t, filtered[0].Tracks[0].Segments, 2)
	assert.Empty(t, filtered[0].Tracks[0].Segments[0].Points)
	assert.Len(t, filtered[0].Tracks[0].Segments[1].Points, 1)
}
