package geometry

import "math"

// DistanceToLineSigned returns the distance from point to the infinite line,
// signed by which side of the line the point lies on: positive on the side
// the normal (Direction rotated clockwise by 90°) points toward. A
// degenerate line reduces to the plain distance to its base, always
// positive.
func DistanceToLineSigned(line Line, point Point) float64 {
	if line.Direction.X == 0 && line.Direction.Y == 0 {
		return Distance(point, line.Base)
	}
	normal := Point{line.Direction.Y, -line.Direction.X}.Normalized()
	return normal.Dot(point) - normal.Dot(line.Base)
}

// DistanceToLine returns the unsigned distance from point to the infinite
// line.
func DistanceToLine(line Line, point Point) float64 {
	return math.Abs(DistanceToLineSigned(line, point))
}

// DistanceToEdge treats line as the bounded segment from Base to
// Base+Direction and returns the distance from point to that segment. The
// orthogonal projection parameter is clamped to [0, 1], so points beyond
// either endpoint measure to the endpoint, not to the infinite line.
func DistanceToEdge(line Line, point Point) float64 {
	if line.Direction.X == 0 && line.Direction.Y == 0 {
		return Distance(point, line.Base)
	}

	d := point.Sub(line.Base).Dot(line.Direction) / line.Direction.Dot(line.Direction)

	if d < 0 {
		return Distance(point, line.Base)
	} else if d > 1 {
		return Distance(point, line.Base.Add(line.Direction))
	}
	return DistanceToLine(line, point)
}

// ProjectPointOnLineDir projects point orthogonally onto the infinite line
// through base with direction dir. dir must already be normalized.
func ProjectPointOnLineDir(base, dir, point Point) Point {
	l := (point.X-base.X)*dir.X + (point.Y-base.Y)*dir.Y
	return base.Add(dir.Mul(l))
}

// ProjectPointOnLine projects point orthogonally onto line. The line's
// direction does not need to be normalized.
func ProjectPointOnLine(line Line, point Point) Point {
	return ProjectPointOnLineDir(line.Base, line.Direction.Normalized(), point)
}

// ProjectPointOnEdgeDir projects point onto the segment from base to
// base+dir. The projection is computed against the infinite line first and
// then clamped into the segment, so the result is always a point of the
// segment.
func ProjectPointOnEdgeDir(base, dir, point Point) Point {
	projection := ProjectPointOnLineDir(base, dir.Normalized(), point)

	d := projection.Sub(base).Dot(dir) / dir.Dot(dir)

	if d < 0 {
		return base
	} else if d > 1 {
		return base.Add(dir)
	}
	return projection
}

// ProjectPointOnEdge projects point onto the segment from line.Base to
// line.Base+line.Direction.
func ProjectPointOnEdge(line Line, point Point) Point {
	return ProjectPointOnEdgeDir(line.Base, line.Direction, point)
}
