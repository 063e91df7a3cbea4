package geometry

// ContainsPoint reports whether point lies in the rectangle, boundaries
// inclusive on all four sides.
func (r Rect) ContainsPoint(point Point) bool {
	min, max := r.normalized()
	return min.X <= point.X && point.X <= max.X &&
		min.Y <= point.Y && point.Y <= max.Y
}

// IsPointInsideRectInt is the integer flavor of rectangle containment. The
// corners must already be ordered bottom-left, top-right. Boundaries are
// inclusive.
func IsPointInsideRectInt(bottomLeft, topRight, point IntPoint) bool {
	return bottomLeft.X <= point.X && point.X <= topRight.X &&
		bottomLeft.Y <= point.Y && point.Y <= topRight.Y
}

// ClipPoint clamps each coordinate of point into the rectangle's span
// independently. clipped reports whether any coordinate moved.
func (r Rect) ClipPoint(point Point) (Point, bool) {
	min, max := r.normalized()
	clipped := false
	if point.X < min.X {
		point.X = min.X
		clipped = true
	}
	if point.X > max.X {
		point.X = max.X
		clipped = true
	}
	if point.Y < min.Y {
		point.Y = min.Y
		clipped = true
	}
	if point.Y > max.Y {
		point.Y = max.Y
		clipped = true
	}
	return point, clipped
}

// ClipPointInsideRectangle clamps an integer point into the rectangle given
// by its bottom-left and top-right corners. clipped reports whether any
// coordinate moved.
func ClipPointInsideRectangle(bottomLeft, topRight, point IntPoint) (IntPoint, bool) {
	clipped := false
	if point.X < bottomLeft.X {
		point.X = bottomLeft.X
		clipped = true
	}
	if point.X > topRight.X {
		point.X = topRight.X
		clipped = true
	}
	if point.Y < bottomLeft.Y {
		point.Y = bottomLeft.Y
		clipped = true
	}
	if point.Y > topRight.Y {
		point.Y = topRight.Y
		clipped = true
	}
	return point, clipped
}

// ClipPointInsideRectangleF clamps a float point against integer corners.
// The comparison is against the exact integer values, with no fractional
// tolerance: a point at x = bottomLeft.X - 0.001 is clipped.
func ClipPointInsideRectangleF(bottomLeft, topRight IntPoint, point Point) (Point, bool) {
	clipped := false
	if point.X < float64(bottomLeft.X) {
		point.X = float64(bottomLeft.X)
		clipped = true
	}
	if point.X > float64(topRight.X) {
		point.X = float64(topRight.X)
		clipped = true
	}
	if point.Y < float64(bottomLeft.Y) {
		point.Y = float64(bottomLeft.Y)
		clipped = true
	}
	if point.Y > float64(topRight.Y) {
		point.Y = float64(topRight.Y)
		clipped = true
	}
	return point, clipped
}

// lineRectDedupTolerance deduplicates boundary hits closer together than
// this many length units, so a line through a corner does not report the
// corner twice.
const lineRectDedupTolerance = 0.1

// IntersectionOfLineAndRect intersects an infinite line with the
// rectangle's boundary. ok is false when the line misses the rectangle
// entirely. A line touching a single corner or edge point yields p1 == p2.
// With two distinct points they are ordered so that p1 to p2 follows the
// line's direction.
func (r Rect) IntersectionWithLine(line Line) (p1, p2 Point, ok bool) {
	bottomLeft, topRight := r.normalized()

	foundPoints := 0
	var point [2]Point
	if line.Direction.X != 0 {
		y1 := line.Base.Y + (bottomLeft.X-line.Base.X)*line.Direction.Y/line.Direction.X
		if y1 >= bottomLeft.Y && y1 <= topRight.Y {
			point[foundPoints] = Point{bottomLeft.X, y1}
			foundPoints++
		}
		y2 := line.Base.Y + (topRight.X-line.Base.X)*line.Direction.Y/line.Direction.X
		if y2 >= bottomLeft.Y && y2 <= topRight.Y {
			point[foundPoints] = Point{topRight.X, y2}
			foundPoints++
		}
	}
	if line.Direction.Y != 0 {
		x1 := line.Base.X + (bottomLeft.Y-line.Base.Y)*line.Direction.X/line.Direction.Y
		if x1 >= bottomLeft.X && x1 <= topRight.X && foundPoints < 2 {
			point[foundPoints] = Point{x1, bottomLeft.Y}
			if foundPoints == 0 || point[0].Sub(point[1]).Norm() > lineRectDedupTolerance {
				foundPoints++
			}
		}
		x2 := line.Base.X + (topRight.Y-line.Base.Y)*line.Direction.X/line.Direction.Y
		if x2 >= bottomLeft.X && x2 <= topRight.X && foundPoints < 2 {
			point[foundPoints] = Point{x2, topRight.Y}
			if foundPoints == 0 || point[0].Sub(point[1]).Norm() > lineRectDedupTolerance {
				foundPoints++
			}
		}
	}

	switch foundPoints {
	case 1:
		return point[0], point[0], true
	case 2:
		if point[1].Sub(point[0]).Dot(line.Direction) > 0 {
			return point[0], point[1], true
		}
		return point[1], point[0], true
	default:
		return Point{}, Point{}, false
	}
}

// IntersectionOfLineAndRectInt is the integer flavor of the line/rectangle
// intersection. The corners must already be ordered bottom-left, top-right.
// Intersections are computed in float and truncated toward zero.
func IntersectionOfLineAndRectInt(bottomLeft, topRight IntPoint, line Line) (p1, p2 IntPoint, ok bool) {
	r := Rect{bottomLeft.ToPoint(), topRight.ToPoint()}
	fp1, fp2, ok := r.IntersectionWithLine(line)
	if !ok {
		return IntPoint{}, IntPoint{}, false
	}
	return fp1.ToIntPoint(), fp2.ToIntPoint(), true
}

// CircleIntersectsRect reports whether circle and rectangle share at least
// one point.
func CircleIntersectsRect(c Circle, r Rect) bool {
	min, max := r.normalized()

	// If the center is farther than the radius from the rectangle's spans,
	// the circle cannot reach it.
	if c.Center.X < min.X-c.Radius ||
		c.Center.X > max.X+c.Radius ||
		c.Center.Y < min.Y-c.Radius ||
		c.Center.Y > max.Y+c.Radius {
		return false
	}

	// The box check alone is wrong near the corners, where both coordinates
	// can be within the radius of the spans while the circle still misses.
	// Only there is the true center-to-corner distance decisive.
	rSquare := sqr(c.Radius)
	if (c.Center.X < min.X && c.Center.Y < min.Y && c.Center.Sub(min).SquaredNorm() > rSquare) ||
		(c.Center.X < min.X && c.Center.Y > max.Y && c.Center.Sub(Point{min.X, max.Y}).SquaredNorm() > rSquare) ||
		(c.Center.X > max.X && c.Center.Y < min.Y && c.Center.Sub(Point{max.X, min.Y}).SquaredNorm() > rSquare) ||
		(c.Center.X > max.X && c.Center.Y > max.Y && c.Center.Sub(max).SquaredNorm() > rSquare) {
		return false
	}
	return true
}
