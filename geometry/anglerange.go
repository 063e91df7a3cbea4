package geometry

import "math"

// AngleRange is a closed interval of angles in radians with wraparound
// semantics: after normalizing both bounds into (-π, π], a range whose Min
// exceeds its Max passes through ±π.
type AngleRange struct {
	Min, Max float64
}

// normalizeAngle maps an angle into (-π, π].
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// IsInside reports whether angle lies within the closed interval.
func (r AngleRange) IsInside(angle float64) bool {
	a := normalizeAngle(angle)
	min := normalizeAngle(r.Min)
	max := normalizeAngle(r.Max)
	if min <= max {
		return min <= a && a <= max
	}
	// The range wraps through ±π.
	return a >= min || a <= max
}

// IsPointInsideArc reports whether point lies within the closed circular
// sector around center spanned by angleRange, up to radius. Both the radius
// bound and the angular bounds are inclusive.
func IsPointInsideArc(point, center Point, angleRange AngleRange, radius float64) bool {
	pointToArc := point.Sub(center)
	return pointToArc.SquaredNorm() <= sqr(radius) && angleRange.IsInside(pointToArc.Angle())
}
