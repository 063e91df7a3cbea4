package geometry

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Debug descriptions. Colors encode classification so a dump of many probe
// points against the same polygon stays readable.

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p IntPoint) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("%v + t%v", l.Base, l.Direction)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle %v r=%v", c.Center, c.Radius)
}

// DbgClassify renders the probe points colored by even-odd containment:
// green inside, cyan exactly on the border, red outside.
func (poly Polygon) DbgClassify(points []Point) string {
	descriptions := make([]string, len(points))
	for i, p := range points {
		name := p.String()
		onBorder := false
		for j := range poly {
			if DistanceToEdge(poly.Edge(j), p) == 0 {
				onBorder = true
				break
			}
		}
		switch {
		case onBorder:
			name = aurora.Cyan(name).String()
		case poly.ContainsPointByEvenOdd(p):
			name = aurora.Green(name).String()
		default:
			name = aurora.Red(name).String()
		}
		descriptions[i] = name
	}
	return strings.Join(descriptions, " ")
}
