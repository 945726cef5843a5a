package arclength

import (
	"context"
	"math/rand"
	"testing"

	"go.viam.com/test"

	"go.viam.com/pathparam/curve"
	"go.viam.com/pathparam/logging"
)

func TestReparamAll(t *testing.T) {
	spline := curve.NewQuinticHermiteFromPoses(0, 0, 0, 30, 10, 0)
	reparam, err := NewReparameterizer(spline, Config{}, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	//nolint:gosec
	rng := rand.New(rand.NewSource(5190))
	lengths := make([]float64, 1000)
	for i := range lengths {
		lengths[i] = (rng.Float64()*1.2 - 0.1) * reparam.TotalLength()
	}

	params, err := ReparamAll(context.Background(), reparam, lengths)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, params, test.ShouldHaveLength, len(lengths))
	for i, s := range lengths {
		test.That(t, params[i], test.ShouldEqual, reparam.Reparam(s))
	}

	params, err = ReparamAll(context.Background(), reparam, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, params, test.ShouldHaveLength, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReparamAll(ctx, reparam, lengths)
	test.That(t, err, test.ShouldBeError, context.Canceled)
}
