package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/trailstats/trailstats/internal/models"
)

// Parse reads and decodes a GPX file into the model hierarchy, preserving
// the original track/segment/point order exactly.
func Parse(filename string) (models.File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return models.File{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file, filepath.Base(filename))
}

// ParseReader decodes GPX from an io.Reader. The name is carried through to
// the model for labelling; if the file's metadata has a name, that wins.
func ParseReader(r io.Reader, name string) (models.File, error) {
	decoder := xml.NewDecoder(r)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return models.File{}, fmt.Errorf("failed to parse GPX: %w", err)
	}

	return toModel(doc, name)
}

// toModel converts the wire structure into models.File, parsing timestamps
// and keeping every point in recording order.
func toModel(doc Document, name string) (models.File, error) {
	if doc.Metadata != nil && doc.Metadata.Name != "" {
		name = doc.Metadata.Name
	}

	out := models.File{Name: name}
	for tnum, trk := range doc.Tracks {
		track := models.Track{Name: trk.Name}
		for snum, seg := range trk.Segments {
			segment := models.Segment{Points: make([]models.Point, 0, len(seg.Points))}
			for pnum, pt := range seg.Points {
				if err := validatePosition(pt.Lat, pt.Lon); err != nil {
					return models.File{}, fmt.Errorf(
						"track %d segment %d point %d: %w", tnum+1, snum+1, pnum+1, err)
				}
				point := models.Point{
					Latitude:  pt.Lat,
					Longitude: pt.Lon,
					Elevation: pt.Elevation,
				}
				if pt.Time != "" {
					ts, err := parseTime(pt.Time)
					if err != nil {
						return models.File{}, fmt.Errorf(
							"track %d segment %d point %d: %w", tnum+1, snum+1, pnum+1, err)
					}
					point.Time = &ts
				}
				segment.Points = append(segment.Points, point)
			}
			track.Segments = append(track.Segments, segment)
		}
		out.Tracks = append(out.Tracks, track)
	}

	return out, nil
}

// validatePosition rejects non-finite and out-of-range coordinates. XML float
// decoding accepts "NaN" and "Inf", which would otherwise slip through every
// distance comparison downstream.
func validatePosition(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude %v", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return fmt.Errorf("invalid longitude %v", lon)
	}
	return nil
}

// parseTime parses an RFC 3339 timestamp. Some writers drop the trailing
// timezone designator; retry with 'Z' appended before giving up.
func parseTime(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return ts, nil
	}
	if ts, zerr := time.Parse(time.RFC3339, s+"Z"); zerr == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
}
