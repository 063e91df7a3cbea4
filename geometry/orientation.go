package geometry

// CCW classifies the turn from (p1-p0) to (p2-p0): +1 for a
// counterclockwise turn, -1 for a clockwise turn. When the three points are
// collinear the result is broken down further: -1 if p2 lies behind p0 on
// the ray through p1, 0 if p2 lies between p0 and p1 (inclusive), +1 if p2
// lies beyond p1.
//
// This predicate is the single source of truth for every which-side
// decision in the package. Containment and clipping both reduce to it, so
// they can never classify a point differently from each other. The
// comparisons are exact on purpose; see the Eps variants of the
// intersection routines for tolerance-based degeneracy handling.
func CCW(p0, p1, p2 Point) int {
	dx1 := p1.X - p0.X
	dy1 := p1.Y - p0.Y
	dx2 := p2.X - p0.X
	dy2 := p2.Y - p0.Y
	if dx1*dy2 > dy1*dx2 {
		return 1
	}
	if dx1*dy2 < dy1*dx2 {
		return -1
	}
	// Collinear from here on.
	if dx1*dx2 < 0 || dy1*dy2 < 0 {
		return -1
	}
	if dx1*dx1+dy1*dy1 >= dx2*dx2+dy2*dy2 {
		return 0
	}
	return 1
}

// IsPointLeft reports whether point lies strictly to the left of the
// directed line from start through end. A point exactly on the line is not
// left.
func IsPointLeft(start, end, point Point) bool {
	return (end.X-start.X)*(point.Y-start.Y)-(end.Y-start.Y)*(point.X-start.X) > 0
}
