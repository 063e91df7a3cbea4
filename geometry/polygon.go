package geometry

// Polygon is an ordered sequence of at least three vertices forming a
// closed boundary; the last vertex connects back to the first. The
// convex-only routines do not verify convexity, the caller guarantees it by
// picking the matching routine.
type Polygon []Point

// Polygon3 is a Polygon with 3D vertices. Only the even-odd containment
// test consumes it; z is carried but never used.
type Polygon3 []Point3

// Edge returns polygon edge i as the segment from vertex i to vertex i+1,
// wrapping around at the end.
func (poly Polygon) Edge(i int) Line {
	j := (i + 1) % len(poly)
	return Line{Base: poly[i], Direction: poly[j].Sub(poly[i])}
}

// ContainsPointByEvenOdd applies the even-odd rule: a horizontal ray from
// the point toward +x toggles an inside flag each time it crosses an edge.
// Edges are counted with a half-open vertex rule (>= on one endpoint, < on
// the other) so a vertex shared by two edges is never counted twice. Works
// for non-convex polygons.
func (poly Polygon) ContainsPointByEvenOdd(point Point) bool {
	oddNodes := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		if (poly[i].Y < point.Y && poly[j].Y >= point.Y) ||
			(poly[j].Y < point.Y && poly[i].Y >= point.Y) {
			if poly[i].X+(point.Y-poly[i].Y)/(poly[j].Y-poly[i].Y)*(poly[j].X-poly[i].X) < point.X {
				oddNodes = !oddNodes
			}
		}
		j = i
	}
	return oddNodes
}

// ContainsPointByEvenOdd is the 3D overload of the even-odd test. The z
// components are ignored; the test runs on x and y as if the polygon were
// projected onto the xy plane.
func (poly Polygon3) ContainsPointByEvenOdd(point Point3) bool {
	oddNodes := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		if (poly[i].Y < point.Y && poly[j].Y >= point.Y) ||
			(poly[j].Y < point.Y && poly[i].Y >= point.Y) {
			if poly[i].X+(point.Y-poly[i].Y)/(poly[j].Y-poly[i].Y)*(poly[j].X-poly[i].X) < point.X {
				oddNodes = !oddNodes
			}
		}
		j = i
	}
	return oddNodes
}

// ContainsPointConvex reports containment in a convex polygon. The
// orientation of the point against the first edge fixes the expected sign
// for all remaining edges, so the polygon may wind either way. A point
// exactly on an edge counts as inside.
func (poly Polygon) ContainsPointConvex(point Point) bool {
	orientation := CCW(poly[0], poly[1], point)
	if orientation == 0 {
		return true
	}
	for i := 1; i < len(poly); i++ {
		current := CCW(poly[i], poly[(i+1)%len(poly)], point)
		if current == 0 {
			return true
		}
		if current != orientation {
			return false
		}
	}
	return true
}

// IntersectionOfLineAndConvexPolygon walks the polygon's edges in vertex
// order and returns the first crossing of line whose crossing direction
// matches the polygon winding the caller declares with isCCW. The winding
// is not inferred from the polygon. The returned edge is the polygon edge
// that produced the crossing, with normalized direction.
//
// Calling this with fewer than three vertices is a contract violation and
// panics.
func IntersectionOfLineAndConvexPolygon(poly Polygon, line Line, isCCW bool) (intersection Point, edge Line, ok bool) {
	if len(poly) < 3 {
		panic("geometry: convex polygon needs at least 3 vertices")
	}
	for i := range poly {
		p1 := poly[i]
		p2 := poly[(i+1)%len(poly)]
		polygonLine := Line{Base: p1, Direction: p2.Sub(p1).Normalized()}

		isLeftP1 := IsPointLeft(line.Base, line.Base.Add(line.Direction), p1)
		isLeftP2 := IsPointLeft(line.Base, line.Base.Add(line.Direction), p2)
		crosses := isLeftP1 != isLeftP2
		if isCCW {
			crosses = crosses && !isLeftP1
		} else {
			crosses = crosses && isLeftP1
		}
		if crosses {
			if p, found := IntersectionOfLines(line, polygonLine); found {
				return p, polygonLine, true
			}
		}
	}
	return Point{}, Line{}, false
}

// ClipPointToBorder projects point orthogonally onto the nearest bounded
// edge of the polygon. clipped is false when the minimum edge distance is
// exactly zero, i.e. the point already lies on the border; the point is
// then returned unchanged.
func (poly Polygon) ClipPointToBorder(point Point) (clippedPoint Point, clipped bool) {
	// Compare the distance to all edges and project onto the nearest one.
	min := DistanceToEdge(Line{poly[0], poly[len(poly)-1].Sub(poly[0])}, point)
	n := len(poly) - 1
	for j := 0; j < len(poly)-1; j++ {
		if d := DistanceToEdge(Line{poly[j], poly[j+1].Sub(poly[j])}, point); d < min {
			min = d
			n = j
		}
	}
	if min == 0 {
		return point, false
	}

	next := 0
	if n != len(poly)-1 {
		next = n + 1
	}
	return ProjectPointOnEdgeDir(poly[n], poly[next].Sub(poly[n]), point), true
}

// ClipPointInside moves point onto the polygon border unless the even-odd
// rule already places it inside. clipped reports whether the point moved.
func (poly Polygon) ClipPointInside(point Point) (Point, bool) {
	if poly.ContainsPointByEvenOdd(point) {
		return point, false
	}
	clippedPoint, _ := poly.ClipPointToBorder(point)
	return clippedPoint, true
}

// ClipPointInsideConvex moves point onto the polygon border unless the
// convex containment test already places it inside. clipped reports whether
// the point moved.
func (poly Polygon) ClipPointInsideConvex(point Point) (Point, bool) {
	if poly.ContainsPointConvex(point) {
		return point, false
	}
	clippedPoint, _ := poly.ClipPointToBorder(point)
	return clippedPoint, true
}
