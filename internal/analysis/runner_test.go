package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailstats/trailstats/internal/models"
)

func TestRunPreservesGroupOrder(t *testing.T) {
	// Many segments with distinct point counts; results must come back in
	// resolution order no matter how the pool schedules them.
	var file models.File
	for i := 0; i < 16; i++ {
		seg := models.Segment{}
		for j := 0; j <= i; j++ {
			seg.Points = append(seg.Points, ptAt(float64(j*10), nil, nil))
		}
		file.Tracks = append(file.Tracks, models.Track{
			Name:     fmt.Sprintf("t%d", i),
			Segments: []models.Segment{seg},
		})
	}

	results := Run([]models.File{file}, testConfig())

	require.Len(t, results, 16)
	for i, st := range results {
		assert.Equal(t, i, st.Source.TrackIndex)
		assert.Equal(t, i+1, st.PointCount)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	files := testFiles()
	cfg := testConfig()

	first := Run(files, cfg)
	second := Run(files, cfg)

	assert.Equal(t, first, second)
}

func TestJoiningEqualsSinglePass(t *testing.T) {
	// Joining two adjacent segments must behave exactly like one pass over
	// the concatenated sequence, not like summing two independent results:
	// the pair straddling the seam is 40 m apart and only the joined run
	// counts it.
	segA := models.Segment{Points: []models.Point{
		ptAt(0, elev(100), tstamp(0)),
		ptAt(20, elev(100), tstamp(10)),
	}}
	segB := models.Segment{Points: []models.Point{
		ptAt(60, elev(100), tstamp(20)),
		ptAt(80, elev(100), tstamp(30)),
	}}
	file := models.File{Name: "x.gpx", Tracks: []models.Track{
		{Name: "ride", Segments: []models.Segment{segA, segB}},
	}}

	split := Run([]models.File{file}, testConfig())
	require.Len(t, split, 2)

	joinedCfg := testConfig()
	joinedCfg.JoinSegments = true
	joined := Run([]models.File{file}, joinedCfg)
	require.Len(t, joined, 1)

	assert.Equal(t, split[0].PointCount+split[1].PointCount, joined[0].PointCount)

	manual := AnalyzeGroup(models.Group{
		Points: append(append([]models.Point{}, segA.Points...), segB.Points...),
	}, joinedCfg)
	assert.Equal(t, manual.TotalDistance, joined[0].TotalDistance)

	// The seam distance exists only in the joined run.
	assert.Greater(t, joined[0].TotalDistance,
		split[0].TotalDistance+split[1].TotalDistance)
}

func TestRunAppliesFilterBeforeGrouping(t *testing.T) {
	file := models.File{Name: "f.gpx", Tracks: []models.Track{{
		Segments: []models.Segment{{Points: []models.Point{
			ptAt(0, elev(0), tstamp(0)),
			ptAt(0, elev(0), tstamp(1)),
		}}},
	}}}

	cfg := testConfig()
	cfg.FilterZeroElevation = true
	results := Run([]models.File{file}, cfg)

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].PointCount, "fully filtered segment still yields an empty result")
	assert.Nil(t, results[0].TotalTime)
}

func TestRunSharedConfig(t *testing.T) {
	// Same input, different thresholds: a looser distance gate must not
	// leak between runs through shared state.
	file := models.File{Tracks: []models.Track{{
		Segments: []models.Segment{{Points: []models.Point{
			ptAt(0, nil, nil),
			ptAt(3, nil, nil),
		}}},
	}}}

	loose := testConfig()
	strict := testConfig()
	strict.MinDistance = 5

	looseResults := Run([]models.File{file}, loose)
	strictResults := Run([]models.File{file}, strict)

	assert.InDelta(t, 3.0, looseResults[0].TotalDistance, 0.05)
	assert.Equal(t, 0.0, strictResults[0].TotalDistance)
}
