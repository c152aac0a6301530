package gpx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <metadata><name>Tiger Mountain</name></metadata>
  <trk>
    <name>ascent</name>
    <trkseg>
      <trkpt lat="47.4880" lon="-121.9470">
        <ele>150.5</ele>
        <time>2021-05-01T10:00:00Z</time>
      </trkpt>
      <trkpt lat="47.4881" lon="-121.9471">
        <time>2021-05-01T10:00:05Z</time>
      </trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="47.4890" lon="-121.9480">
        <ele>0</ele>
      </trkpt>
    </trkseg>
  </trk>
  <trk>
    <trkseg>
      <trkpt lat="47.5000" lon="-121.9500">
        <ele>300</ele>
        <time>2021-05-01T11:00:00</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseReader(t *testing.T) {
	file, err := ParseReader(strings.NewReader(sampleGPX), "tiger.gpx")
	require.NoError(t, err)

	assert.Equal(t, "Tiger Mountain", file.Name, "metadata name wins over the file name")
	require.Len(t, file.Tracks, 2)
	assert.Equal(t, "ascent", file.Tracks[0].Name)
	require.Len(t, file.Tracks[0].Segments, 2)

	first := file.Tracks[0].Segments[0].Points[0]
	assert.Equal(t, 47.4880, first.Latitude)
	assert.Equal(t, -121.9470, first.Longitude)
	require.NotNil(t, first.Elevation)
	assert.Equal(t, 150.5, *first.Elevation)
	require.NotNil(t, first.Time)
	assert.Equal(t, time.Date(2021, 5, 1, 10, 0, 0, 0, time.UTC), first.Time.UTC())
}

func TestParseOptionalFields(t *testing.T) {
	file, err := ParseReader(strings.NewReader(sampleGPX), "tiger.gpx")
	require.NoError(t, err)

	// Missing <ele> stays nil, present <ele>0</ele> is a real zero.
	second := file.Tracks[0].Segments[0].Points[1]
	assert.Nil(t, second.Elevation)
	require.NotNil(t, second.Time)

	zero := file.Tracks[0].Segments[1].Points[0]
	require.NotNil(t, zero.Elevation)
	assert.Equal(t, 0.0, *zero.Elevation)
	assert.Nil(t, zero.Time)
}

func TestParseTimeWithoutZone(t *testing.T) {
	// Some writers omit the timezone designator; it is read as UTC.
	file, err := ParseReader(strings.NewReader(sampleGPX), "tiger.gpx")
	require.NoError(t, err)

	pt := file.Tracks[1].Segments[0].Points[0]
	require.NotNil(t, pt.Time)
	assert.Equal(t, time.Date(2021, 5, 1, 11, 0, 0, 0, time.UTC), pt.Time.UTC())
}

func TestParsePreservesPointOrder(t *testing.T) {
	doc := `<gpx version="1.1" creator="test"><trk><trkseg>
		<trkpt lat="3" lon="0"></trkpt>
		<trkpt lat="1" lon="0"></trkpt>
		<trkpt lat="2" lon="0"></trkpt>
	</trkseg></trk></gpx>`

	file, err := ParseReader(strings.NewReader(doc), "order.gpx")
	require.NoError(t, err)

	points := file.Tracks[0].Segments[0].Points
	require.Len(t, points, 3)
	assert.Equal(t, []float64{3, 1, 2}, []float64{
		points[0].Latitude, points[1].Latitude, points[2].Latitude,
	}, "points stay in recording order, never re-sorted")
}

func TestParseInvalidCoordinate(t *testing.T) {
	doc := `<gpx version="1.1" creator="test"><trk><trkseg>
		<trkpt lat="north" lon="0"></trkpt>
	</trkseg></trk></gpx>`

	_, err := ParseReader(strings.NewReader(doc), "bad.gpx")
	assert.Error(t, err)
}

func TestParseNonFiniteCoordinate(t *testing.T) {
	// encoding/xml happily decodes "NaN" into a float attribute; the decoder
	// must reject it instead of letting it poison the distance math.
	doc := `<gpx version="1.1" creator="test"><trk><trkseg>
		<trkpt lat="NaN" lon="0"></trkpt>
	</trkseg></trk></gpx>`

	_, err := ParseReader(strings.NewReader(doc), "bad.gpx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid latitude")
}

func TestParseOutOfRangeCoordinates(t *testing.T) {
	cases := []struct {
		name string
		lat  string
		lon  string
		want string
	}{
		{"latitude above 90", "95", "0", "invalid latitude"},
		{"longitude below -180", "45", "-200", "invalid longitude"},
		{"infinite longitude", "45", "Inf", "invalid longitude"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := `<gpx version="1.1" creator="test"><trk><trkseg>
				<trkpt lat="` + tc.lat + `" lon="` + tc.lon + `"></trkpt>
			</trkseg></trk></gpx>`

			_, err := ParseReader(strings.NewReader(doc), "bad.gpx")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseInvalidTime(t *testing.T) {
	doc := `<gpx version="1.1" creator="test"><trk><trkseg>
		<trkpt lat="1" lon="2"><time>yesterday</time></trkpt>
	</trkseg></trk></gpx>`

	_, err := ParseReader(strings.NewReader(doc), "bad.gpx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}

func TestParseFallbackName(t *testing.T) {
	doc := `<gpx version="1.0" creator="test"><trk><trkseg></trkseg></trk></gpx>`

	file, err := ParseReader(strings.NewReader(doc), "fallback.gpx")
	require.NoError(t, err)
	assert.Equal(t, "fallback.gpx", file.Name)
}
