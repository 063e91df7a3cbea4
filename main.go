package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"planegeom/geometry"
)

// Demo of the geometry queries. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra
// newline. The first polygon is the region of interest: the demo reports
// whether the probe point lies inside it, clips the probe onto it if not,
// and intersects the given line with the polygon and with its bounding
// rectangle. Winding is not inferred; pass --cw if your polygon winds
// clockwise.
var (
	probeArg = kingpin.Flag("probe", "Probe point as \"x,y\".").Default("0,0").String()
	baseArg  = kingpin.Flag("line-base", "Line base point as \"x,y\".").Default("0,0").String()
	dirArg   = kingpin.Flag("line-dir", "Line direction as \"x,y\".").Default("1,0").String()
	cwArg    = kingpin.Flag("cw", "Treat the polygon as winding clockwise.").Bool()
	drawArg  = kingpin.Flag("draw", "Render the scene to the terminal.").Bool()
	scaleArg = kingpin.Flag("scale", "Pixels per input unit when drawing.").Default("10").Float64()
)

func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polygons))
	if len(polygons) == 0 {
		return
	}
	poly := polygons[0]

	probe := parsePoint(*probeArg)
	line := geometry.Line{Base: parsePoint(*baseArg), Direction: parsePoint(*dirArg)}

	if poly.ContainsPointByEvenOdd(probe) {
		fmt.Println(aurora.Green(fmt.Sprintf("Probe %v is inside the polygon", probe)))
	} else {
		clipped, _ := poly.ClipPointInside(probe)
		fmt.Println(aurora.Red(fmt.Sprintf("Probe %v is outside the polygon", probe)))
		fmt.Printf("Clipped onto the border at %v\n", clipped)
		probe = clipped
	}

	bounds := boundingRect(poly)
	if p1, p2, ok := bounds.IntersectionWithLine(line); ok {
		fmt.Printf("Line crosses the bounding rectangle at %v and %v\n", p1, p2)
	} else {
		fmt.Println("Line misses the bounding rectangle")
	}

	if p, _, ok := geometry.IntersectionOfLineAndConvexPolygon(poly, line, !*cwArg); ok {
		fmt.Printf("Line leaves the polygon at %v\n", p)
	} else {
		fmt.Println("Line does not cross the polygon in the requested direction")
	}

	if *drawArg {
		scene := geometry.DebugScene{
			Polygons: polygons,
			Lines:    []geometry.Line{line},
			Points:   []geometry.Point{probe},
		}
		scene.Draw(*scaleArg)
	}
}

func readPolygons(in *os.File) []geometry.Polygon {
	polygons := []geometry.Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := geometry.Polygon{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = geometry.Polygon{}
			}
			continue
		}

		// Parse the point out of the line
		parts := strings.Fields(line)
		x, _ := strconv.ParseFloat(parts[0], 64)
		y, _ := strconv.ParseFloat(parts[1], 64)
		points = append(points, geometry.Point{X: x, Y: y})
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(s string) geometry.Point {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		kingpin.Fatalf("invalid point %q, expected \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		kingpin.Fatalf("invalid x value in %q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		kingpin.Fatalf("invalid y value in %q: %v", s, err)
	}
	return geometry.Point{X: x, Y: y}
}

func boundingRect(poly geometry.Polygon) geometry.Rect {
	min := poly[0]
	max := poly[0]
	for _, p := range poly[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return geometry.Rect{A: min, B: max}
}
