package geometry

import "math"

// CircumscribedCircle returns the circle through three integer points. For
// collinear input the result is degenerate: radius 0 and center at the
// origin. Callers must treat that zero value as "undefined", never as a
// real circle at the origin.
func CircumscribedCircle(point1, point2, point3 IntPoint) Circle {
	return CircumscribedCircleEps(point1, point2, point3, 0)
}

// CircumscribedCircleEps is CircumscribedCircle with an absolute tolerance
// on the collinearity check. The check runs against the closed-form
// denominator, which is proportional to the triangle's signed area;
// tolerance 0 reproduces the exact-equality behavior.
func CircumscribedCircleEps(point1, point2, point3 IntPoint, eps float64) Circle {
	x1 := float64(point1.X)
	y1 := float64(point1.Y)
	x2 := float64(point2.X)
	y2 := float64(point2.Y)
	x3 := float64(point3.X)
	y3 := float64(point3.Y)

	temp := x2*y1 - x3*y1 - x1*y2 + x3*y2 + x1*y3 - x2*y3
	if math.Abs(temp) <= eps {
		return Circle{}
	}

	var circle Circle
	circle.Radius = 0.5 *
		math.Sqrt(((sqr(x1-x2)+sqr(y1-y2))*
			(sqr(x1-x3)+sqr(y1-y3))*
			(sqr(x2-x3)+sqr(y2-y3)))/
			sqr(temp))
	circle.Center.X = (sqr(x3)*(y1-y2) +
		(sqr(x1)+(y1-y2)*(y1-y3))*(y2-y3) +
		sqr(x2)*(-y1+y3)) /
		(-2 * temp)
	circle.Center.Y = (sqr(x1)*(x2-x3) +
		sqr(x2)*x3 +
		x3*(-sqr(y1)+sqr(y2)) -
		x2*(sqr(x3)-sqr(y1)+sqr(y3)) +
		x1*(-sqr(x2)+sqr(x3)-sqr(y2)+sqr(y3))) /
		(2 * temp)
	return circle
}
