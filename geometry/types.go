// Package geometry provides stateless planar queries and constructions
// over points, lines, circles, rectangles and polygons: intersections,
// containment, clipping, distances, projections, circle fitting and
// segment rasterization.
//
// All functions are pure: identical inputs yield bit-identical outputs,
// geometric non-intersection and degeneracy are ordinary return values,
// and nothing blocks or allocates beyond requested output containers.
// Degeneracy checks compare exactly by default; the Eps variants accept a
// tolerance where callers need robustness over reproducibility.
package geometry

import "math"

// Point is a 2D coordinate with float64 components. Everything in this
// package operates on plain value types; no routine retains a reference to
// its inputs, so any value can be used from multiple goroutines freely.
type Point struct {
	X, Y float64
}

// IntPoint is a 2D coordinate with integer components. Conversions between
// IntPoint and Point are always explicit.
type IntPoint struct {
	X, Y int
}

// Point3 is a 3D coordinate. Only the even-odd containment test consumes
// it, and that test ignores Z entirely (the polygon is treated as projected
// onto the xy plane).
type Point3 struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross is the z component of the cross product of p and q taken as plane
// vectors.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) SquaredNorm() float64 { return p.X*p.X + p.Y*p.Y }

func (p Point) Norm() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// Angle is the direction of p as a vector from the origin, in (-π, π].
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Normalized returns the unit vector with the direction of p. The zero
// vector is returned unchanged.
func (p Point) Normalized() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return Point{p.X / n, p.Y / n}
}

// ToIntPoint truncates both components toward zero.
func (p Point) ToIntPoint() IntPoint { return IntPoint{int(p.X), int(p.Y)} }

func (p IntPoint) ToPoint() Point { return Point{float64(p.X), float64(p.Y)} }

func (p IntPoint) Sub(q IntPoint) IntPoint { return IntPoint{p.X - q.X, p.Y - q.Y} }

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return b.Sub(a).Norm()
}

// DistanceInt returns the Euclidean distance between two integer points.
func DistanceInt(a, b IntPoint) float64 {
	return Distance(a.ToPoint(), b.ToPoint())
}

// Line is an infinite line (or, where a routine says so, a ray or segment)
// through Base with direction Direction. Direction is not required to be
// unit length; routines that need a normalized direction normalize
// internally and say so. A zero Direction collapses the line to its base
// point, and every routine accepting a Line treats that case as a plain
// point.
type Line struct {
	Base, Direction Point
}

// NormalizeDirection scales Direction to unit length in place.
func (l *Line) NormalizeDirection() {
	l.Direction = l.Direction.Normalized()
}

// Circle is a center and a non-negative radius. Radius 0 degenerates to a
// point.
type Circle struct {
	Center Point
	Radius float64
}

// Rect is the axis-aligned rectangle spanned by two corners. The corners
// may be given in any order; every Rect routine normalizes to (min, max)
// internally rather than assuming a canonical corner order.
type Rect struct {
	A, B Point
}

func (r Rect) normalized() (min, max Point) {
	min = Point{math.Min(r.A.X, r.B.X), math.Min(r.A.Y, r.B.Y)}
	max = Point{math.Max(r.A.X, r.B.X), math.Max(r.A.Y, r.B.Y)}
	return
}
