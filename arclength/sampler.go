package arclength

import (
	"math"

	"go.viam.com/pathparam/curve"
)

// Stats describes the work done while sampling a curve.
type Stats struct {
	// Evaluations is the number of times the curve was evaluated.
	Evaluations int
	// MaxDepthReached is the deepest bisection level visited.
	MaxDepthReached int
	// DepthCapped is true if some span still violated an error bound when MaxDepth stopped it.
	DepthCapped bool
}

// sampler builds a sample table by recursive bisection of the parameter domain. Samples are
// appended to a single buffer: the left half of a span is always finished before the right
// half starts, so the buffer stays ordered.
type sampler struct {
	curve   curve.Curve
	cfg     Config
	samples []Sample
	stats   Stats
}

func newSampler(c curve.Curve, cfg Config) *sampler {
	return &sampler{curve: c, cfg: cfg}
}

func (s *sampler) eval(t float64) curve.Dual {
	s.stats.Evaluations++
	return s.curve.Evaluate(t)
}

// run samples the whole curve and returns the table and its total length.
func (s *sampler) run() ([]Sample, float64) {
	lo := s.eval(0)
	hi := s.eval(1)
	s.samples = append(s.samples, Sample{S: 0, T: 0})
	total := s.subdivide(0, 0, 1, lo, hi, 0)
	return s.samples, total
}

// subdivide appends the samples covering (tLo, tHi] given that the curve has length sLo at tLo,
// and returns the length at tHi. The right half starts from the length measured over the left
// half, not from the coarse estimate over the whole span.
func (s *sampler) subdivide(sLo, tLo, tHi float64, pLo, pHi curve.Dual, depth int) float64 {
	if depth > s.stats.MaxDepthReached {
		s.stats.MaxDepthReached = depth
	}

	tMid := (tLo + tHi) / 2
	pMid := s.eval(tMid)

	deltaK := math.Abs(pLo.Curvature() - pHi.Curvature())
	length := ThreePointArcLength(pLo.Value, pMid.Value, pHi.Value)

	if deltaK > s.cfg.MaxDeltaK || length > s.cfg.MaxSegmentLength {
		if depth < s.cfg.MaxDepth {
			sMid := s.subdivide(sLo, tLo, tMid, pLo, pMid, depth+1)
			return s.subdivide(sMid, tMid, tHi, pMid, pHi, depth+1)
		}
		s.stats.DepthCapped = true
	}

	sHi := sLo + length
	s.samples = append(s.samples, Sample{S: sHi, T: tHi})
	return sHi
}
