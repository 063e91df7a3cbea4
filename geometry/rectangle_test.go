package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContainsPoint(t *testing.T) {
	r := Rect{Point{-5, -5}, Point{5, 5}}
	assert.True(t, r.ContainsPoint(Point{0, 0}))
	// Boundaries are inclusive on all four sides.
	assert.True(t, r.ContainsPoint(Point{5, 5}))
	assert.True(t, r.ContainsPoint(Point{-5, 3}))
	assert.False(t, r.ContainsPoint(Point{5.1, 0}))

	// Corner order does not matter.
	swapped := Rect{Point{5, 5}, Point{-5, -5}}
	assert.True(t, swapped.ContainsPoint(Point{0, 0}))
	assert.True(t, swapped.ContainsPoint(Point{-5, -5}))
}

func TestIsPointInsideRectInt(t *testing.T) {
	bl := IntPoint{0, 0}
	tr := IntPoint{10, 10}
	assert.True(t, IsPointInsideRectInt(bl, tr, IntPoint{5, 5}))
	assert.True(t, IsPointInsideRectInt(bl, tr, IntPoint{0, 10}))
	assert.False(t, IsPointInsideRectInt(bl, tr, IntPoint{11, 5}))
}

func TestRectClipPoint(t *testing.T) {
	r := Rect{Point{5, 5}, Point{-5, -5}} // swapped corners on purpose

	p, clipped := r.ClipPoint(Point{0, 0})
	assert.False(t, clipped)
	assert.Equal(t, Point{0, 0}, p)

	p, clipped = r.ClipPoint(Point{7, -9})
	assert.True(t, clipped)
	assert.Equal(t, Point{5, -5}, p)
}

func TestClipPointInsideRectangle(t *testing.T) {
	bl := IntPoint{0, 0}
	tr := IntPoint{10, 10}

	p, clipped := ClipPointInsideRectangle(bl, tr, IntPoint{4, 4})
	assert.False(t, clipped)
	assert.Equal(t, IntPoint{4, 4}, p)

	p, clipped = ClipPointInsideRectangle(bl, tr, IntPoint{-5, 4})
	assert.True(t, clipped)
	assert.Equal(t, IntPoint{0, 4}, p)

	p, clipped = ClipPointInsideRectangle(bl, tr, IntPoint{11, 12})
	assert.True(t, clipped)
	assert.Equal(t, IntPoint{10, 10}, p)
}

func TestClipPointInsideRectangleF(t *testing.T) {
	bl := IntPoint{0, 0}
	tr := IntPoint{10, 10}

	p, clipped := ClipPointInsideRectangleF(bl, tr, Point{3.5, 3.5})
	assert.False(t, clipped)
	assert.Equal(t, Point{3.5, 3.5}, p)

	// The clamp is exact against the integer corner values; no fractional
	// slack is granted.
	p, clipped = ClipPointInsideRectangleF(bl, tr, Point{10.001, -0.001})
	assert.True(t, clipped)
	assert.Equal(t, Point{10, 0}, p)
}

func TestIntersectionWithLine(t *testing.T) {
	r := Rect{Point{-5, -5}, Point{5, 5}}

	t.Run("horizontal line through the middle", func(t *testing.T) {
		line := Line{Base: Point{0, 0}, Direction: Point{1, 0}}
		p1, p2, ok := r.IntersectionWithLine(line)
		require.True(t, ok)
		// Ordered along the line's direction.
		assert.Equal(t, Point{-5, 0}, p1)
		assert.Equal(t, Point{5, 0}, p2)
	})
	t.Run("direction reversed flips the order", func(t *testing.T) {
		line := Line{Base: Point{0, 0}, Direction: Point{-1, 0}}
		p1, p2, ok := r.IntersectionWithLine(line)
		require.True(t, ok)
		assert.Equal(t, Point{5, 0}, p1)
		assert.Equal(t, Point{-5, 0}, p2)
	})
	t.Run("vertical line", func(t *testing.T) {
		line := Line{Base: Point{0, 0}, Direction: Point{0, 1}}
		p1, p2, ok := r.IntersectionWithLine(line)
		require.True(t, ok)
		assert.Equal(t, Point{0, -5}, p1)
		assert.Equal(t, Point{0, 5}, p2)
	})
	t.Run("corner touch yields one deduplicated point", func(t *testing.T) {
		line := Line{Base: Point{0, 10}, Direction: Point{1, -1}}
		p1, p2, ok := r.IntersectionWithLine(line)
		require.True(t, ok)
		assert.Equal(t, Point{5, 5}, p1)
		assert.Equal(t, p1, p2)
	})
	t.Run("miss", func(t *testing.T) {
		line := Line{Base: Point{0, 10}, Direction: Point{1, 0}}
		_, _, ok := r.IntersectionWithLine(line)
		assert.False(t, ok)
	})
	t.Run("swapped corners", func(t *testing.T) {
		swapped := Rect{Point{5, 5}, Point{-5, -5}}
		line := Line{Base: Point{0, 0}, Direction: Point{1, 0}}
		p1, p2, ok := swapped.IntersectionWithLine(line)
		require.True(t, ok)
		assert.Equal(t, Point{-5, 0}, p1)
		assert.Equal(t, Point{5, 0}, p2)
	})
}

func TestIntersectionOfLineAndRectInt(t *testing.T) {
	line := Line{Base: Point{0, 0}, Direction: Point{1, 0}}
	p1, p2, ok := IntersectionOfLineAndRectInt(IntPoint{-5, -5}, IntPoint{5, 5}, line)
	require.True(t, ok)
	assert.Equal(t, IntPoint{-5, 0}, p1)
	assert.Equal(t, IntPoint{5, 0}, p2)
}

func TestCircleIntersectsRect(t *testing.T) {
	r := Rect{Point{0, 0}, Point{10, 10}}

	t.Run("circle inside", func(t *testing.T) {
		assert.True(t, CircleIntersectsRect(Circle{Center: Point{5, 5}, Radius: 1}, r))
	})
	t.Run("overlapping an edge", func(t *testing.T) {
		assert.True(t, CircleIntersectsRect(Circle{Center: Point{-2, 5}, Radius: 3}, r))
	})
	t.Run("far away", func(t *testing.T) {
		assert.False(t, CircleIntersectsRect(Circle{Center: Point{-20, 5}, Radius: 3}, r))
	})
	t.Run("diagonally outside a corner, box overlap but no circle overlap", func(t *testing.T) {
		// Both coordinates are within the radius of the rectangle's spans,
		// but the distance to the nearest corner exceeds the radius.
		c := Circle{Center: Point{-3, -3}, Radius: 4}
		assert.False(t, CircleIntersectsRect(c, r))
	})
	t.Run("diagonally outside a corner but reaching it", func(t *testing.T) {
		c := Circle{Center: Point{-2, -2}, Radius: 4}
		assert.True(t, CircleIntersectsRect(c, r))
	})
}
