package arclength

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/pathparam/curve"
)

func TestResampleArc(t *testing.T) {
	arc := curve.Arc{Radius: 2, Sweep: math.Pi / 2}
	r, err := NewReparameterizer(arc, Config{}, nil)
	test.That(t, err, test.ShouldBeNil)

	points, err := Resample(arc, r, 0.5)
	test.That(t, err, test.ShouldBeNil)
	// π units long: 0, 0.5, ..., 3.0 and the end.
	test.That(t, points, test.ShouldHaveLength, 8)

	for i, p := range points[:len(points)-1] {
		test.That(t, p.Dist, test.ShouldEqual, 0.5*float64(i))
		angle := p.Dist / arc.Radius
		test.That(t, p.Position.X, test.ShouldAlmostEqual, 2*math.Cos(angle), 1e-6)
		test.That(t, p.Position.Y, test.ShouldAlmostEqual, 2*math.Sin(angle), 1e-6)
		test.That(t, p.Heading, test.ShouldAlmostEqual, angle+math.Pi/2, 1e-6)
		test.That(t, p.Curvature, test.ShouldAlmostEqual, 0.5, 1e-12)
	}

	last := points[len(points)-1]
	test.That(t, last.Dist, test.ShouldEqual, r.TotalLength())
	test.That(t, last.T, test.ShouldEqual, 1.)
	test.That(t, last.Position.X, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, last.Position.Y, test.ShouldAlmostEqual, 2, 1e-12)
}

func TestResampleExactMultiple(t *testing.T) {
	line := curve.Line{Start: r2.Point{X: 0, Y: 0}, End: r2.Point{X: 0, Y: 2}}
	r, err := NewReparameterizer(line, Config{}, nil)
	test.That(t, err, test.ShouldBeNil)

	points, err := Resample(line, r, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, points, test.ShouldHaveLength, 5)
	test.That(t, points[2].Position.Y, test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, points[4].Dist, test.ShouldEqual, r.TotalLength())
}

func TestResampleErrors(t *testing.T) {
	line := curve.Line{End: r2.Point{X: 1}}
	r, err := NewReparameterizer(line, Config{}, nil)
	test.That(t, err, test.ShouldBeNil)

	for _, step := range []float64{0, -1, math.NaN()} {
		_, err = Resample(line, r, step)
		test.That(t, err, test.ShouldNotBeNil)
	}
	_, err = Resample(nil, r, 1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestResampleTooManyPoints(t *testing.T) {
	line := curve.Line{End: r2.Point{X: 10}}
	r, err := NewReparameterizer(line, Config{}, nil)
	test.That(t, err, test.ShouldBeNil)

	for _, step := range []float64{1e-320, 1e-10, 10. / MaxResamplePoints} {
		_, err = Resample(line, r, step)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "points")
	}

	points, err := Resample(line, r, 10./(MaxResamplePoints/2))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(points), test.ShouldBeLessThanOrEqualTo, MaxResamplePoints)
}
