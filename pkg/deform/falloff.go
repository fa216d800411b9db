// Package deform implements proximity-weighted soft-selection mesh
// deformation: dragging one anchor vertex pulls a smooth neighborhood of
// surrounding geometry along with it, attenuated by distance.
package deform

import "fmt"

// Curve selects the falloff shape used to attenuate influence by distance.
type Curve int

const (
	// CurveSmooth is a smoothstep ease with zero slope at both the anchor
	// and the influence boundary. Default.
	CurveSmooth Curve = iota
	// CurveLinear attenuates proportionally to distance.
	CurveLinear
	// CurveCubic concentrates influence steeply near the anchor.
	CurveCubic
)

var curveNames = map[Curve]string{
	CurveSmooth: "smooth",
	CurveLinear: "linear",
	CurveCubic:  "cubic",
}

// String returns the lowercase name of the curve
func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("curve(%d)", int(c))
}

// ParseCurve converts a curve name to a Curve value
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "smooth", "":
		return CurveSmooth, nil
	case "linear":
		return CurveLinear, nil
	case "cubic":
		return CurveCubic, nil
	}
	return CurveSmooth, fmt.Errorf("unknown falloff curve %q (want linear, smooth or cubic)", name)
}

// Falloff maps a distance from the anchor to an influence weight in [0,1].
// Influence is 1 at distance 0 and cuts off hard at the radius: any
// distance >= radius yields exactly 0, so the influenced region is the
// half-open interval [0, radius).
//
// The caller must guarantee radius > 0; see Deformer.validate.
func Falloff(distance, radius float64, curve Curve) float64 {
	if distance >= radius {
		return 0
	}

	x := 1 - distance/radius

	switch curve {
	case CurveLinear:
		return x
	case CurveCubic:
		return x * x * x
	default:
		// Hermite smoothstep on x
		return x * x * (3 - 2*x)
	}
}
