// Package arclength maps distance travelled along a smooth planar curve back to the curve's own
// parameter. The mapping is built once from an adaptively sampled table of (length, parameter)
// pairs and then answers queries with a binary search and linear interpolation.
package arclength

import (
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"

	"go.viam.com/pathparam/curve"
	"go.viam.com/pathparam/logging"
	"go.viam.com/pathparam/utils"
)

var (
	// ErrTooFewSamples is returned if sampling produced fewer than two samples.
	ErrTooFewSamples = errors.New("arc length table needs at least two samples")
	// ErrDegenerateCurve is returned if the sampled length of a curve is not a positive number.
	ErrDegenerateCurve = errors.New("curve must have a finite, positive length")
)

// Mapping converts a distance along a curve into the curve parameter at that distance.
type Mapping interface {
	// TotalLength is the length of the whole curve.
	TotalLength() float64
	// Reparam returns the parameter in [0, 1] at arc length s. Values of s outside
	// [0, TotalLength()] are clamped.
	Reparam(s float64) float64
}

// Sample pairs a cumulative arc length with the curve parameter at which it was reached.
type Sample struct {
	S float64
	T float64
}

// Reparameterizer is a Mapping backed by an immutable sample table. It is safe for concurrent
// use.
type Reparameterizer struct {
	samples     []Sample
	totalLength float64
	stats       Stats
}

var _ Mapping = (*Reparameterizer)(nil)

// NewReparameterizer samples c under the given config and returns the resulting mapping. A nil
// logger discards logs.
//
// Zero config fields take their defaults, so MaxDepth: 0 does not disable subdivision and
// MaxDeltaK: 0 does not demand zero curvature change. Use MaxDepth: 1 and a tiny MaxDeltaK for
// the strictest settings.
//
// Curves with a zero first derivative somewhere produce non-finite curvature there; that only
// disables the curvature bound for the affected spans. A curve whose measured length is not
// finite and positive is rejected with ErrDegenerateCurve.
func NewReparameterizer(c curve.Curve, cfg Config, logger logging.Logger) (*Reparameterizer, error) {
	if c == nil {
		return nil, errors.New("curve cannot be nil")
	}
	if logger == nil {
		logger = logging.NewBlankLogger("arclength")
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate("arclength"); err != nil {
		return nil, err
	}

	smp := newSampler(c, cfg)
	samples, total := smp.run()
	r, err := newReparameterizer(samples, total)
	if err != nil {
		return nil, err
	}
	r.stats = smp.stats

	logger.Debugw("built arc length table",
		"samples", len(samples),
		"total_length", total,
		"evaluations", smp.stats.Evaluations,
		"max_depth_reached", smp.stats.MaxDepthReached,
	)
	if smp.stats.DepthCapped {
		logger.Warnw("sampling hit the depth limit before the error bounds were met",
			"max_depth", cfg.MaxDepth,
			"max_delta_k", cfg.MaxDeltaK,
			"max_segment_length", cfg.MaxSegmentLength,
		)
	}
	return r, nil
}

func newReparameterizer(samples []Sample, total float64) (*Reparameterizer, error) {
	if len(samples) < 2 {
		return nil, errors.Wrapf(ErrTooFewSamples, "got %d", len(samples))
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return nil, errors.Wrapf(ErrDegenerateCurve, "length %v", total)
	}
	return &Reparameterizer{samples: samples, totalLength: total}, nil
}

// TotalLength returns the length of the sampled curve.
func (r *Reparameterizer) TotalLength() float64 {
	return r.totalLength
}

// Reparam returns the curve parameter at arc length s. Lengths below the first sample give 0
// and lengths past the last sample give 1. NaN is treated as below the first sample.
func (r *Reparameterizer) Reparam(s float64) float64 {
	idx, found := slices.BinarySearchFunc(r.samples, s, func(sample Sample, target float64) int {
		return cmp.Compare(sample.S, target)
	})
	if found {
		return r.samples[idx].T
	}

	switch idx {
	case 0:
		return 0
	case len(r.samples):
		return 1
	default:
		lo, hi := r.samples[idx-1], r.samples[idx]
		return utils.Lerp(lo.T, hi.T, (s-lo.S)/(hi.S-lo.S))
	}
}

// Samples returns a copy of the sample table.
func (r *Reparameterizer) Samples() []Sample {
	return slices.Clone(r.samples)
}

// Len returns the number of samples in the table.
func (r *Reparameterizer) Len() int {
	return len(r.samples)
}

// Stats returns what sampling the curve cost.
func (r *Reparameterizer) Stats() Stats {
	return r.stats
}
