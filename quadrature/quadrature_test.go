package quadrature

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/pathparam/curve"
)

type pointCurve struct {
	at r2.Point
}

func (p pointCurve) Evaluate(float64) curve.Dual {
	return curve.Dual{Value: p.at}
}

func TestLength(t *testing.T) {
	line := curve.Line{Start: r2.Point{X: -1, Y: 2}, End: r2.Point{X: 5, Y: 10}}
	test.That(t, Length(line, 0, 1, 0), test.ShouldAlmostEqual, 10, 1e-12)
	test.That(t, Length(line, 0.25, 0.75, 8), test.ShouldAlmostEqual, 5, 1e-12)

	arc := curve.Arc{Center: r2.Point{X: 4, Y: 4}, Radius: 3, StartAngle: 1, Sweep: -2.5}
	test.That(t, Length(arc, 0, 1, DefaultNodes), test.ShouldAlmostEqual, arc.Length(), 1e-12)

	// This Bézier has speed 3((1-t)² + t²), so it is exactly 2 long.
	bez := curve.CubicBezier{
		P0: r2.Point{X: 0, Y: 0},
		P1: r2.Point{X: 0, Y: 1},
		P2: r2.Point{X: 1, Y: 1},
		P3: r2.Point{X: 1, Y: 0},
	}
	coarse := Length(bez, 0, 1, 16)
	fine := Length(bez, 0, 1, 128)
	test.That(t, coarse, test.ShouldAlmostEqual, 2, 1e-12)
	test.That(t, fine, test.ShouldAlmostEqual, 2, 1e-12)
}

func TestReparameterizer(t *testing.T) {
	arc := curve.Arc{Radius: 2, Sweep: math.Pi}
	r, err := New(arc, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.TotalLength(), test.ShouldAlmostEqual, 2*math.Pi, 1e-12)

	// Constant speed curves map distance to parameter linearly.
	for _, s := range []float64{0.1, 1, 2.5, 6} {
		test.That(t, r.Reparam(s), test.ShouldAlmostEqual, s/r.TotalLength(), 1e-10)
	}

	test.That(t, r.Reparam(0), test.ShouldEqual, 0.)
	test.That(t, r.Reparam(-3), test.ShouldEqual, 0.)
	test.That(t, r.Reparam(math.NaN()), test.ShouldEqual, 0.)
	test.That(t, r.Reparam(r.TotalLength()), test.ShouldEqual, 1.)
	test.That(t, r.Reparam(100), test.ShouldEqual, 1.)
}

func TestReparameterizerNonUniformSpeed(t *testing.T) {
	spline := curve.NewQuinticHermiteFromPoses(0, 0, 0, 30, 10, 0)
	r, err := New(spline, 0)
	test.That(t, err, test.ShouldBeNil)

	for _, s := range []float64{1, 7.5, 15, 31} {
		param := r.Reparam(s)
		test.That(t, Length(spline, 0, param, 0), test.ShouldAlmostEqual, s, 1e-9)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, 0)
	test.That(t, err, test.ShouldBeError, "curve cannot be nil")

	_, err = New(pointCurve{r2.Point{X: 1, Y: 1}}, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "finite, positive length")
}
