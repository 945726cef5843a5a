package curve

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

// checkDerivatives compares the analytic derivatives against central differences.
func checkDerivatives(t *testing.T, c Curve) {
	t.Helper()
	const h = 1e-5
	for _, param := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		before := c.Evaluate(param - h)
		after := c.Evaluate(param + h)
		at := c.Evaluate(param)

		vel := after.Value.Sub(before.Value).Mul(1 / (2 * h))
		test.That(t, at.Velocity.X, test.ShouldAlmostEqual, vel.X, 1e-4)
		test.That(t, at.Velocity.Y, test.ShouldAlmostEqual, vel.Y, 1e-4)

		acc := after.Velocity.Sub(before.Velocity).Mul(1 / (2 * h))
		test.That(t, at.Acceleration.X, test.ShouldAlmostEqual, acc.X, 1e-4)
		test.That(t, at.Acceleration.Y, test.ShouldAlmostEqual, acc.Y, 1e-4)
	}
}

func TestCurvature(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		for _, radius := range []float64{0.5, 1, 7, 250} {
			arc := Arc{Center: r2.Point{X: 3, Y: -2}, Radius: radius, Sweep: math.Pi}
			for _, param := range []float64{0, 0.3, 1} {
				test.That(t, arc.Evaluate(param).Curvature(), test.ShouldAlmostEqual, 1/radius, 1e-12)
			}
		}
	})

	t.Run("clockwise circle is unsigned", func(t *testing.T) {
		arc := Arc{Radius: 2, Sweep: -math.Pi / 2}
		test.That(t, arc.Evaluate(0.5).Curvature(), test.ShouldAlmostEqual, 0.5, 1e-12)
	})

	t.Run("line", func(t *testing.T) {
		line := Line{Start: r2.Point{X: 1, Y: 1}, End: r2.Point{X: 4, Y: 5}}
		test.That(t, line.Evaluate(0.5).Curvature(), test.ShouldEqual, 0.)
	})

	t.Run("explicit derivatives", func(t *testing.T) {
		d := Dual{Velocity: r2.Point{X: 1, Y: 0}, Acceleration: r2.Point{X: 0, Y: 2}}
		test.That(t, d.Curvature(), test.ShouldEqual, 2.)
	})

	t.Run("zero velocity is not finite", func(t *testing.T) {
		// Both the numerator and the denominator vanish.
		d := Dual{Acceleration: r2.Point{X: 0, Y: 1}}
		test.That(t, math.IsNaN(d.Curvature()), test.ShouldBeTrue)

		d = Dual{}
		test.That(t, math.IsNaN(d.Curvature()), test.ShouldBeTrue)
	})
}

func TestHeadingAndSpeed(t *testing.T) {
	d := Dual{Velocity: r2.Point{X: 0, Y: 3}}
	test.That(t, d.Heading(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, d.Speed(), test.ShouldEqual, 3.)
}

func TestLine(t *testing.T) {
	line := Line{Start: r2.Point{X: 0, Y: 0}, End: r2.Point{X: 3, Y: 4}}
	test.That(t, line.Length(), test.ShouldEqual, 5.)
	test.That(t, line.Evaluate(0.5).Value, test.ShouldResemble, r2.Point{X: 1.5, Y: 2})
	test.That(t, line.Evaluate(1).Value, test.ShouldResemble, line.End)
	checkDerivatives(t, line)
}

func TestArc(t *testing.T) {
	arc := Arc{Center: r2.Point{X: 1, Y: 1}, Radius: 2, StartAngle: math.Pi / 4, Sweep: 3 * math.Pi / 4}
	test.That(t, arc.Length(), test.ShouldAlmostEqual, 1.5*math.Pi)

	start := arc.Evaluate(0).Value
	test.That(t, start.X, test.ShouldAlmostEqual, 1+math.Sqrt2)
	test.That(t, start.Y, test.ShouldAlmostEqual, 1+math.Sqrt2)

	end := arc.Evaluate(1).Value
	test.That(t, end.X, test.ShouldAlmostEqual, -1)
	test.That(t, end.Y, test.ShouldAlmostEqual, 1)
	checkDerivatives(t, arc)
}

func TestCubicBezier(t *testing.T) {
	c := CubicBezier{
		P0: r2.Point{X: 0, Y: 0},
		P1: r2.Point{X: 1, Y: 2},
		P2: r2.Point{X: 3, Y: 2},
		P3: r2.Point{X: 4, Y: 0},
	}
	test.That(t, c.Evaluate(0).Value, test.ShouldResemble, c.P0)
	test.That(t, c.Evaluate(1).Value, test.ShouldResemble, c.P3)
	mid := c.Evaluate(0.5).Value
	test.That(t, mid.X, test.ShouldAlmostEqual, 2)
	test.That(t, mid.Y, test.ShouldAlmostEqual, 1.5)

	// The end tangents point along the control polygon.
	test.That(t, c.Evaluate(0).Velocity, test.ShouldResemble, c.P1.Sub(c.P0).Mul(3))
	test.That(t, c.Evaluate(1).Velocity, test.ShouldResemble, c.P3.Sub(c.P2).Mul(3))
	checkDerivatives(t, c)
}

func TestQuinticHermiteBoundaryConditions(t *testing.T) {
	start := Waypoint{
		Position:     r2.Point{X: -2, Y: 1},
		Velocity:     r2.Point{X: 5, Y: 1},
		Acceleration: r2.Point{X: 0.5, Y: -1},
	}
	end := Waypoint{
		Position:     r2.Point{X: 8, Y: 4},
		Velocity:     r2.Point{X: 2, Y: 6},
		Acceleration: r2.Point{X: -3, Y: 0.25},
	}
	spline := NewQuinticHermite(start, end)
	test.That(t, spline.Start(), test.ShouldResemble, start)
	test.That(t, spline.End(), test.ShouldResemble, end)

	for _, tc := range []struct {
		param    float64
		expected Waypoint
	}{
		{0, start},
		{1, end},
	} {
		got := spline.Evaluate(tc.param)
		test.That(t, got.Value.X, test.ShouldAlmostEqual, tc.expected.Position.X, 1e-9)
		test.That(t, got.Value.Y, test.ShouldAlmostEqual, tc.expected.Position.Y, 1e-9)
		test.That(t, got.Velocity.X, test.ShouldAlmostEqual, tc.expected.Velocity.X, 1e-9)
		test.That(t, got.Velocity.Y, test.ShouldAlmostEqual, tc.expected.Velocity.Y, 1e-9)
		test.That(t, got.Acceleration.X, test.ShouldAlmostEqual, tc.expected.Acceleration.X, 1e-9)
		test.That(t, got.Acceleration.Y, test.ShouldAlmostEqual, tc.expected.Acceleration.Y, 1e-9)
	}
	checkDerivatives(t, spline)
}

func TestQuinticHermiteFromPoses(t *testing.T) {
	spline := NewQuinticHermiteFromPoses(0, 0, 0, 30, 10, 0)
	scale := 1.2 * math.Hypot(30, 10)

	start := spline.Evaluate(0)
	test.That(t, start.Value, test.ShouldResemble, r2.Point{X: 0, Y: 0})
	test.That(t, start.Velocity.X, test.ShouldAlmostEqual, scale)
	test.That(t, start.Velocity.Y, test.ShouldAlmostEqual, 0)
	test.That(t, start.Curvature(), test.ShouldAlmostEqual, 0)

	end := spline.Evaluate(1)
	test.That(t, end.Value.X, test.ShouldAlmostEqual, 30, 1e-9)
	test.That(t, end.Value.Y, test.ShouldAlmostEqual, 10, 1e-9)
	test.That(t, end.Heading(), test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, end.Curvature(), test.ShouldAlmostEqual, 0, 1e-9)

	// An S-curve between parallel headings bends in the middle.
	test.That(t, spline.Evaluate(0.25).Curvature(), test.ShouldBeGreaterThan, 0)
}
