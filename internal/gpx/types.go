package gpx

import "encoding/xml"

// Wire-level GPX 1.0/1.1 structure. Only the elements this tool consumes are
// mapped; everything else is skipped by the decoder. Elevation and time stay
// in their raw form here so that an absent element can be told apart from a
// zero value before conversion to the model types.

// Document is the root <gpx> element.
type Document struct {
	XMLName  xml.Name  `xml:"gpx"`
	Version  string    `xml:"version,attr"`
	Creator  string    `xml:"creator,attr"`
	Metadata *Metadata `xml:"metadata"`
	Tracks   []Track   `xml:"trk"`
}

// Metadata is the file-level <metadata> block.
type Metadata struct {
	Name string `xml:"name"`
}

// Track is a <trk> element: an ordered list of segments.
type Track struct {
	Name     string    `xml:"name"`
	Segments []Segment `xml:"trkseg"`
}

// Segment is a <trkseg> element: an ordered list of track points.
type Segment struct {
	Points []TrackPoint `xml:"trkpt"`
}

// TrackPoint is a <trkpt> element. Lat/lon are required attributes; a
// non-numeric value fails the decode. Elevation is a pointer so a missing
// <ele> stays distinguishable from <ele>0</ele>; time is kept as the raw
// string because some writers omit the timezone suffix.
type TrackPoint struct {
	Lat       float64  `xml:"lat,attr"`
	Lon       float64  `xml:"lon,attr"`
	Elevation *float64 `xml:"ele"`
	Time      string   `xml:"time"`
}
