package geometry

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a
// full (or even correct) svg handler. It parses the SVG, finds whatever the
// first polygon is, and converts it into a CCW Polygon. If anything goes
// wrong, it fails the run.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	result := make(Polygon, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		result = append(result, Point{x, y})
	}

	// Ensure that the polygon winds counterclockwise.
	if signedArea(result) < 0 {
		result = reversed(result)
	}
	return result
}

// Shoelace formula; positive for CCW winding.
func signedArea(poly Polygon) float64 {
	area := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.Cross(q)
	}
	return area / 2
}

func reversed(poly Polygon) Polygon {
	result := make(Polygon, 0, len(poly))
	for i := len(poly) - 1; i >= 0; i-- {
		result = append(result, poly[i])
	}
	return result
}
