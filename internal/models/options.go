package models

// AnalyzeOptions are the per-request engine settings accepted by the API.
// Unset fields fall back to the configured defaults.
type AnalyzeOptions struct {
	Name                 string   `form:"name"`
	MinElevationGain     *float64 `form:"minElevationGain"`     // meters
	MinDistance          *float64 `form:"minDistance"`          // meters
	StandstillTimeS      *int     `form:"standstillTime"`       // seconds
	JoinSegments         bool     `form:"joinSegments"`
	JoinTracks           bool     `form:"joinTracks"`
	FilterZeroElevation  bool     `form:"filterZeroElevation"`
	FilterElevationBelow *float64 `form:"filterElevationBelow"` // meters
	Store                bool     `form:"store"`
}
