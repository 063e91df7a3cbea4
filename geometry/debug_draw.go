package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"planegeom/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// DebugScene collects geometry to render together. Infinite lines are
// stroked across the whole scene; points are marked with dots and labeled
// with readable names.
type DebugScene struct {
	Polygons []Polygon
	Lines    []Line
	Circles  []Circle
	Points   []Point
}

func (s *DebugScene) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, poly := range s.Polygons {
		for _, p := range poly {
			grow(p)
		}
	}
	for _, l := range s.Lines {
		grow(l.Base)
		grow(l.Base.Add(l.Direction))
	}
	for _, c := range s.Circles {
		grow(c.Center.Sub(Point{c.Radius, c.Radius}))
		grow(c.Center.Add(Point{c.Radius, c.Radius}))
	}
	for _, p := range s.Points {
		grow(p)
	}
	return
}

// Draw renders the scene to a PNG and cats it to the terminal.
func (s *DebugScene) Draw(scale float64) {
	minX, minY, maxX, maxY := s.bounds()

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i := range s.Polygons {
		poly := s.Polygons[i]
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Stroke lines across the whole scene, since they are infinite.
	span := math.Max(maxX-minX, maxY-minY) + 2*dbgDrawPadding/scale
	c.SetRGB(1, 1, 0)
	for _, l := range s.Lines {
		dir := l.Direction.Normalized()
		if dir == (Point{}) {
			continue
		}
		a := l.Base.Sub(dir.Mul(span))
		b := l.Base.Add(dir.Mul(span))
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 1)
	for _, circle := range s.Circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for i := range s.Points {
		p := s.Points[i]
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
		c.DrawString(dbg.Name(&s.Points[i]), p.X+5/scale, p.Y)
	}

	err := c.SavePNG("/tmp/geometry_scene.png")
	if err != nil {
		panic(err)
	}
	imgcat.CatFile("/tmp/geometry_scene.png", os.Stdout)
}
