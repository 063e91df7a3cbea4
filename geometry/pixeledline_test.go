package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPixeledLine(t *testing.T) {
	line := NewPixeledLine(IntPoint{0, 0}, IntPoint{4, 2}, 1)
	assert.Equal(t, PixeledLine{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2},
	}, line)
}

func TestNewPixeledLineSinglePoint(t *testing.T) {
	line := NewPixeledLine(IntPoint{3, 7}, IntPoint{3, 7}, 1)
	assert.Equal(t, PixeledLine{{3, 7}}, line)
}

func TestNewPixeledLineStepSize(t *testing.T) {
	line := NewPixeledLine(IntPoint{0, 0}, IntPoint{4, 2}, 2)
	assert.Equal(t, PixeledLine{
		{0, 0}, {2, 1}, {4, 2},
	}, line)
}

func TestNewPixeledLineSteep(t *testing.T) {
	// With |Δy| dominant, sampling runs along y and x follows the integer
	// slope.
	line := NewPixeledLine(IntPoint{0, 0}, IntPoint{2, 6}, 1)
	assert.Equal(t, PixeledLine{
		{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 6},
	}, line)
}

func TestNewPixeledLineReversed(t *testing.T) {
	line := NewPixeledLine(IntPoint{4, 2}, IntPoint{0, 0}, 1)
	assert.Equal(t, PixeledLine{
		{4, 2}, {3, 2}, {2, 1}, {1, 1}, {0, 0},
	}, line)
}
