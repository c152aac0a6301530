package analysis

import (
	"time"

	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/models"
	"github.com/trailstats/trailstats/internal/spatial"
)

// Accumulator is the per-group state machine. It consumes one filtered
// sample group in a single forward pass: Step once per sample, then
// Finalize.
//
// Two thresholds gate the accumulators. A sample must move at least
// MinDistance from the current anchor before it contributes to distance,
// gain, or moving time; until then the anchor stays put and the sample only
// updates the elevation extremes. Inside a distance crossing, an upward
// elevation change of at least MinElevationGain from the gain baseline adds
// to the total and ratchets the baseline forward; smaller or downhill
// changes leave the baseline anchored where it was.
type Accumulator struct {
	cfg *config.Config

	count int

	anchor    models.Point // reference for the distance and time gates
	hasAnchor bool

	elevBase *float64 // elevation-gain ratchet baseline

	startElev *float64
	endElev   *float64
	minElev   *float64
	maxElev   *float64

	distanceTotal float64
	gainTotal     float64

	firstTime *time.Time
	lastTime  *time.Time

	lastMoved   *time.Time // timestamp of the last distance-gate crossing
	movingTotal time.Duration
	movingValid bool
}

// NewAccumulator returns an accumulator ready to consume one group.
func NewAccumulator(cfg *config.Config) *Accumulator {
	return &Accumulator{cfg: cfg, movingValid: true}
}

// Step consumes the next sample in recording order.
func (a *Accumulator) Step(p models.Point) {
	a.count++

	// Elevation extremes and start/end are not gated by thresholds.
	if p.HasElevation() {
		e := *p.Elevation
		if a.startElev == nil {
			a.startElev = ptr(e)
		}
		if a.minElev == nil || e < *a.minElev {
			a.minElev = ptr(e)
		}
		if a.maxElev == nil || e > *a.maxElev {
			a.maxElev = ptr(e)
		}
		a.endElev = ptr(e)
		if a.elevBase == nil {
			a.elevBase = ptr(e)
		}
	}

	if p.HasTime() {
		t := *p.Time
		if a.firstTime == nil {
			a.firstTime = &t
		}
		a.lastTime = &t
	}

	// The first sample only initializes state.
	if !a.hasAnchor {
		a.anchor = p
		a.hasAnchor = true
		if p.HasTime() {
			t := *p.Time
			a.lastMoved = &t
		}
		return
	}

	d := spatial.Distance3D(a.anchor, p)
	if d < a.cfg.MinDistance {
		// Gate not crossed: the anchor does not move and the sample
		// contributes to no accumulator.
		return
	}

	a.distanceTotal += d

	// Elevation gate, evaluated only inside a distance crossing. The
	// baseline advances only on a successful upward crossing.
	if a.elevBase != nil && p.HasElevation() {
		if delta := *p.Elevation - *a.elevBase; delta >= a.cfg.MinElevationGain {
			a.gainTotal += delta
			a.elevBase = ptr(*p.Elevation)
		}
	}

	// Moving time: a gap within StandstillTime is credited in full; a
	// longer gap is retroactively a standstill and credits nothing.
	if a.lastMoved != nil && p.HasTime() {
		gap := p.Time.Sub(*a.lastMoved)
		if gap < 0 {
			gap = -gap
		}
		if gap <= a.cfg.StandstillTime {
			a.movingTotal += gap
		}
	} else {
		// A crossing without usable timestamps makes moving time
		// unreportable for the whole group.
		a.movingValid = false
	}
	if p.HasTime() {
		t := *p.Time
		a.lastMoved = &t
	}

	a.anchor = p
}

// Finalize emits the group's stats. Fields whose inputs were missing stay
// nil rather than defaulting to zero.
func (a *Accumulator) Finalize(src models.GroupSource) models.Stats {
	stats := models.Stats{
		Source:         src,
		PointCount:     a.count,
		StartElevation: a.startElev,
		EndElevation:   a.endElev,
		MinElevation:   a.minElev,
		MaxElevation:   a.maxElev,
		ElevationGain:  a.gainTotal,
		TotalDistance:  a.distanceTotal,
	}

	if a.firstTime != nil && a.lastTime != nil {
		total := a.lastTime.Sub(*a.firstTime)
		stats.TotalTime = &total

		if a.movingValid {
			moving := a.movingTotal
			stats.MovingTime = &moving
		}
	}

	return stats
}

// AnalyzeGroup runs one accumulator pass over an already-filtered group.
func AnalyzeGroup(group models.Group, cfg *config.Config) models.Stats {
	acc := NewAccumulator(cfg)
	for _, p := range group.Points {
		acc.Step(p)
	}
	return acc.Finalize(group.Source)
}

func ptr(v float64) *float64 {
	return &v
}
