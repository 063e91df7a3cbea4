package geometry

import "math"

// IntersectionOfLines solves the 2x2 linear system built from the
// parametric forms of both lines. ok is false when the direction vectors
// are exactly parallel, which includes coincident lines: a false result is
// ambiguous between "no intersection" and "infinitely many".
func IntersectionOfLines(line1, line2 Line) (Point, bool) {
	return IntersectionOfLinesEps(line1, line2, 0)
}

// IntersectionOfLinesEps is IntersectionOfLines with an absolute tolerance
// on the parallelism check. Tolerance 0 reproduces the exact-equality
// behavior bit for bit, which keeps replays deterministic.
func IntersectionOfLinesEps(line1, line2 Line, eps float64) (Point, bool) {
	if math.Abs(line1.Direction.Y*line2.Direction.X-line1.Direction.X*line2.Direction.Y) <= eps {
		return Point{}, false
	}

	var intersection Point
	intersection.X = line1.Base.X +
		line1.Direction.X*
			(line1.Base.Y*line2.Direction.X-
				line2.Base.Y*line2.Direction.X+
				(-line1.Base.X+line2.Base.X)*line2.Direction.Y)/
			(-line1.Direction.Y*line2.Direction.X+line1.Direction.X*line2.Direction.Y)

	intersection.Y = line1.Base.Y +
		line1.Direction.Y*
			(-line1.Base.Y*line2.Direction.X+
				line2.Base.Y*line2.Direction.X+
				(line1.Base.X-line2.Base.X)*line2.Direction.Y)/
			(line1.Direction.Y*line2.Direction.X-line1.Direction.X*line2.Direction.Y)

	return intersection, true
}

// IntersectionOfCircles intersects two circles via the radical line
// construction. n is the number of intersection points: 0 when the centers
// are farther apart than the radius sum or one circle is strictly inside
// the other, 1 for tangency (p1 and p2 coincide), 2 otherwise. No
// left/right ordering of the two points is guaranteed beyond what the
// algebra produces.
func IntersectionOfCircles(c0, c1 Circle) (p1, p2 Point, n int) {
	dx := c1.Center.X - c0.Center.X
	dy := c1.Center.Y - c0.Center.Y

	d := math.Sqrt(dy*dy + dx*dx)

	if d > c0.Radius+c1.Radius {
		// Too far apart, no solution.
		return Point{}, Point{}, 0
	}
	if d < math.Abs(c0.Radius-c1.Radius) {
		// One circle contained in the other, no solution.
		return Point{}, Point{}, 0
	}

	// a is the distance from center 0 to the point where the radical line
	// crosses the line between the centers.
	a := (c0.Radius*c0.Radius - c1.Radius*c1.Radius + d*d) / (2 * d)

	x2 := c0.Center.X + dx*a/d
	y2 := c0.Center.Y + dy*a/d

	// h is the distance from that crossing point to either intersection
	// point.
	h := math.Sqrt(c0.Radius*c0.Radius - a*a)

	rx := -dy * (h / d)
	ry := dx * (h / d)

	p1 = Point{x2 + rx, y2 + ry}
	p2 = Point{x2 - rx, y2 - ry}

	if p1 == p2 {
		return p1, p2, 1
	}
	return p1, p2, 2
}

// IntersectionOfLineAndCircle substitutes the line's parametric form into
// the circle equation and solves the resulting quadratic in the
// direction-scaled parameter; the direction is not re-normalized. n is 0
// for a miss, 1 for a tangent, 2 otherwise. p1 corresponds to the smaller
// parameter along the line, p2 to the larger.
func IntersectionOfLineAndCircle(line Line, circle Circle) (p1, p2 Point, n int) {
	// Solves
	//   (x - x_m)^2 + (y - y_m)^2 = r^2
	//   base + t * direction = [x, y]
	// for t, then substitutes back.
	divisor := line.Direction.SquaredNorm()
	p := 2 * (line.Base.Dot(line.Direction) - circle.Center.Dot(line.Direction)) / divisor
	q := (line.Base.Sub(circle.Center).SquaredNorm() - sqr(circle.Radius)) / divisor
	ph := p / 2
	radicand := sqr(ph) - q
	if radicand < 0 {
		return Point{}, Point{}, 0
	}

	radix := math.Sqrt(radicand)
	p1 = line.Base.Add(line.Direction.Mul(-ph - radix))
	p2 = line.Base.Add(line.Direction.Mul(-ph + radix))
	if radicand == 0 {
		return p1, p2, 1
	}
	return p1, p2, 2
}

// IntersectionOfRaysFactor treats both lines as segments over their [0, 1]
// parameter span and returns ray1's parameter at the crossing. ok is false
// when the segments are parallel or the crossing lies outside either
// segment.
func IntersectionOfRaysFactor(ray1, ray2 Line) (float64, bool) {
	return IntersectionOfRaysFactorEps(ray1, ray2, 0)
}

// IntersectionOfRaysFactorEps is IntersectionOfRaysFactor with an absolute
// tolerance on the parallelism check. Tolerance 0 reproduces the
// exact-equality behavior.
func IntersectionOfRaysFactorEps(ray1, ray2 Line, eps float64) (float64, bool) {
	divisor := ray2.Direction.X*ray1.Direction.Y - ray1.Direction.X*ray2.Direction.Y
	if math.Abs(divisor) <= eps {
		return 0, false
	}
	k := (ray2.Direction.Y*ray1.Base.X - ray2.Direction.Y*ray2.Base.X - ray2.Direction.X*ray1.Base.Y + ray2.Direction.X*ray2.Base.Y) / divisor
	l := (ray1.Direction.Y*ray1.Base.X - ray1.Direction.Y*ray2.Base.X - ray1.Direction.X*ray1.Base.Y + ray1.Direction.X*ray2.Base.Y) / divisor
	if k >= 0 && l >= 0 && k <= 1 && l <= 1 {
		return k, true
	}
	return 0, false
}

// SegmentsIntersect reports whether the segment from a1 to a2 and the
// segment from b1 to b2 share a point, including endpoint contact.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	return CCW(a1, a2, b1)*CCW(a1, a2, b2) <= 0 &&
		CCW(b1, b2, a1)*CCW(b1, b2, a2) <= 0
}
