// Package quadrature computes curve lengths by Gauss-Legendre integration of the speed and
// inverts them by bisection. It is slow compared to the sampled table in package arclength and
// is meant as a high accuracy reference for it.
package quadrature

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate/quad"

	"go.viam.com/pathparam/curve"
)

const (
	// DefaultNodes is the number of Gauss-Legendre nodes used when none is given.
	DefaultNodes = 64

	paramTolerance = 1e-13
	maxBisections  = 100
)

// Length integrates |c'(t)| over [t0, t1] with an n-node Gauss-Legendre rule.
func Length(c curve.Curve, t0, t1 float64, n int) float64 {
	if n <= 0 {
		n = DefaultNodes
	}
	speed := func(t float64) float64 {
		return c.Evaluate(t).Speed()
	}
	return quad.Fixed(speed, t0, t1, n, quad.Legendre{}, 0)
}

// Reparameterizer inverts the integrated length of a curve. It is safe for concurrent use as
// long as the curve is.
type Reparameterizer struct {
	curve       curve.Curve
	nodes       int
	totalLength float64
}

// New returns a reparameterizer for c that integrates with n nodes, or DefaultNodes if n is not
// positive.
func New(c curve.Curve, n int) (*Reparameterizer, error) {
	if c == nil {
		return nil, errors.New("curve cannot be nil")
	}
	if n <= 0 {
		n = DefaultNodes
	}
	total := Length(c, 0, 1, n)
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return nil, errors.Errorf("curve must have a finite, positive length, got %v", total)
	}
	return &Reparameterizer{curve: c, nodes: n, totalLength: total}, nil
}

// TotalLength returns the integrated length of the whole curve.
func (r *Reparameterizer) TotalLength() float64 {
	return r.totalLength
}

// Reparam returns the parameter at which the integrated length reaches s. Values outside
// [0, TotalLength()] are clamped to 0 and 1.
func (r *Reparameterizer) Reparam(s float64) float64 {
	switch {
	case math.IsNaN(s) || s <= 0:
		return 0
	case s >= r.totalLength:
		return 1
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < maxBisections && hi-lo > paramTolerance; i++ {
		mid := (lo + hi) / 2
		if Length(r.curve, 0, mid, r.nodes) < s {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
