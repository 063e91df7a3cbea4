package geometry

// PixeledLine is the rasterization of a straight segment between two
// integer endpoints: an ordered sequence of pixels sampled every stepSize
// pixels along the dominant axis, with the other coordinate computed from
// the integer slope. It is built eagerly by NewPixeledLine and owned
// exclusively by the caller afterwards.
type PixeledLine []IntPoint

// NewPixeledLine rasterizes the segment from 'from' to 'to'. stepSize must
// be at least 1. Equal endpoints yield a single-point line. The slope
// arithmetic is pure integer math truncating toward zero, so the exact
// pixel sequence is reproducible across platforms.
func NewPixeledLine(from, to IntPoint, stepSize int) PixeledLine {
	if from == to {
		return PixeledLine{from}
	}

	var line PixeledLine
	dx := to.X - from.X
	dy := to.Y - from.Y
	if absInt(dx) > absInt(dy) {
		sign := sgn(dx)
		numberOfPixels := absInt(dx) + 1
		line = make(PixeledLine, 0, numberOfPixels/stepSize)
		for x := 0; x < numberOfPixels; x += stepSize {
			y := x * dy / dx
			line = append(line, IntPoint{from.X + x*sign, from.Y + y*sign})
		}
	} else {
		sign := sgn(dy)
		numberOfPixels := absInt(dy) + 1
		line = make(PixeledLine, 0, numberOfPixels/stepSize)
		for y := 0; y < numberOfPixels; y += stepSize {
			x := y * dx / dy
			line = append(line, IntPoint{from.X + x*sign, from.Y + y*sign})
		}
	}
	return line
}
