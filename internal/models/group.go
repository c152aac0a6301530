package models

// GroupSource identifies where a group's samples came from, for labelling.
// Indices are zero-based; an index is -1 when the corresponding level was
// collapsed by joining.
type GroupSource struct {
	FileIndex    int    `json:"file_index"`
	TrackIndex   int    `json:"track_index"`
	SegmentIndex int    `json:"segment_index"`
	Label        string `json:"label"`
}

// Group is one ordered sequence of samples analysed as a unit: a segment, a
// joined track, or the joined whole run. Groups are independent of each other
// once resolved.
type Group struct {
	Source GroupSource `json:"source"`
	Points []Point     `json:"points"`
}
