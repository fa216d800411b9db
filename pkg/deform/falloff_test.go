package deform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCurves = []Curve{CurveLinear, CurveSmooth, CurveCubic}

func TestFalloffZeroBeyondRadius(t *testing.T) {
	for _, curve := range allCurves {
		for _, dist := range []float64{2.0, 2.5, 10, 1e9} {
			assert.Zero(t, Falloff(dist, 2.0, curve),
				"curve %s at distance %g should have no influence", curve, dist)
		}
	}
}

func TestFalloffExactRadiusBoundary(t *testing.T) {
	// Influence region is half-open [0, r): a vertex at exactly the radius
	// is outside it.
	for _, curve := range allCurves {
		assert.Zero(t, Falloff(2.0, 2.0, curve), "curve %s", curve)
	}
}

func TestFalloffFullAtZeroDistance(t *testing.T) {
	for _, curve := range allCurves {
		for _, radius := range []float64{0.5, 1, 2, 100} {
			assert.Equal(t, 1.0, Falloff(0, radius, curve),
				"curve %s radius %g", curve, radius)
		}
	}
}

func TestFalloffSmoothMidpoint(t *testing.T) {
	// Smoothstep is symmetric about its midpoint.
	assert.Equal(t, 0.5, Falloff(1.0, 2.0, CurveSmooth))
}

func TestFalloffLinearShape(t *testing.T) {
	assert.Equal(t, 0.75, Falloff(0.5, 2.0, CurveLinear))
	assert.Equal(t, 0.25, Falloff(1.5, 2.0, CurveLinear))
}

func TestFalloffCubicShape(t *testing.T) {
	// x = 0.5 at half radius, weight = 0.125
	assert.Equal(t, 0.125, Falloff(1.0, 2.0, CurveCubic))
}

func TestFalloffMonotonic(t *testing.T) {
	const radius = 2.0
	const steps = 200

	for _, curve := range allCurves {
		prev := Falloff(0, radius, curve)
		for i := 1; i <= steps; i++ {
			d := radius * float64(i) / steps
			w := Falloff(d, radius, curve)
			assert.LessOrEqual(t, w, prev,
				"curve %s not monotonic at distance %g", curve, d)
			assert.GreaterOrEqual(t, w, 0.0, "curve %s below zero at %g", curve, d)
			assert.LessOrEqual(t, w, 1.0, "curve %s above one at %g", curve, d)
			prev = w
		}
	}
}

func TestParseCurve(t *testing.T) {
	for _, name := range []string{"linear", "smooth", "cubic"} {
		curve, err := ParseCurve(name)
		require.NoError(t, err)
		assert.Equal(t, name, curve.String())
	}

	// Empty defaults to smooth
	curve, err := ParseCurve("")
	require.NoError(t, err)
	assert.Equal(t, CurveSmooth, curve)

	_, err = ParseCurve("quadratic")
	assert.Error(t, err)
}
