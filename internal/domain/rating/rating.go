// Package rating computes the composite power score used by ranked
// team views.
package rating

import (
	"math"

	"github.com/okian/gridiron/internal/domain/aggregate"
)

// Factor names accepted in a weights map.
const (
	FactorRecord   = "record"
	FactorMargin   = "margin"
	FactorStrength = "strength"
)

// Default factor weights.
const (
	defaultRecordWeight   = 0.5
	defaultMarginWeight   = 0.3
	defaultStrengthWeight = 0.2

	// marginCap bounds per-game scoring margin when normalizing it into
	// [0, 1]; a team averaging +20 a game is treated as maxed out.
	marginCap = 20.0
)

// Option applies a configuration option to the Rater.
type Option func(*Rater)

// WithWeightsFromConfig sets factor weights from a configuration map.
// Unknown factor names are ignored; non-positive weights are skipped.
func WithWeightsFromConfig(weights map[string]float64) Option {
	return func(r *Rater) {
		for factor, w := range weights {
			if w <= 0 {
				continue
			}
			switch factor {
			case FactorRecord:
				r.recordWeight = w
			case FactorMargin:
				r.marginWeight = w
			case FactorStrength:
				r.strengthWeight = w
			}
		}
	}
}

// Input carries the per-team factors feeding one power score.
type Input struct {
	WinPct            float64 // wins over games, in [0, 1]
	MarginPerGame     float64 // (points for - points against) / games
	StrengthOfVictory float64 // combined pct of beaten opponents, in [0, 1]
}

// Rater folds the weighted factors into a single score.
type Rater struct {
	recordWeight   float64
	marginWeight   float64
	strengthWeight float64
}

// New creates a Rater with configuration options.
func New(opts ...Option) *Rater {
	r := &Rater{
		recordWeight:   defaultRecordWeight,
		marginWeight:   defaultMarginWeight,
		strengthWeight: defaultStrengthWeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Score computes the composite power score, rounded to 3 decimals.
// All three factors are normalized into [0, 1] before weighting, so the
// score itself stays within the sum of the weights.
func (r *Rater) Score(in Input) float64 {
	margin := (clamp(in.MarginPerGame, -marginCap, marginCap) + marginCap) / (2 * marginCap)
	score := r.recordWeight*clamp(in.WinPct, 0, 1) +
		r.marginWeight*margin +
		r.strengthWeight*clamp(in.StrengthOfVictory, 0, 1)
	return aggregate.Round3(score)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
