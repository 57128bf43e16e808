package contour

import (
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"

	"github.com/apokalypsix/chartx"
)

// Cell edge indices used by the configuration table.
const (
	edgeBottom = 0
	edgeRight  = 1
	edgeTop    = 2
	edgeLeft   = 3
)

// edgeTable maps the 4-bit corner configuration to the edges each emitted
// segment crosses, as consecutive pairs. Bit 0 is the bottom-left corner,
// bit 1 bottom-right, bit 2 top-right, bit 3 top-left; a set bit means the
// corner value is at or above the threshold. Configurations 5 and 10 are
// the saddle cases and carry two segments with a fixed pairing.
var edgeTable = [16][]uint8{
	{},                                           // 0: all below
	{edgeLeft, edgeBottom},                       // 1: bottom-left above
	{edgeBottom, edgeRight},                      // 2: bottom-right above
	{edgeLeft, edgeRight},                        // 3: bottom row above
	{edgeRight, edgeTop},                         // 4: top-right above
	{edgeLeft, edgeBottom, edgeRight, edgeTop},   // 5: saddle
	{edgeBottom, edgeTop},                        // 6: right column above
	{edgeLeft, edgeTop},                          // 7: all but top-left
	{edgeTop, edgeLeft},                          // 8: top-left above
	{edgeTop, edgeBottom},                        // 9: left column above
	{edgeBottom, edgeRight, edgeTop, edgeLeft},   // 10: saddle
	{edgeTop, edgeRight},                         // 11: all but top-right
	{edgeRight, edgeLeft},                        // 12: top row above
	{edgeRight, edgeBottom},                      // 13: all but bottom-right
	{edgeBottom, edgeLeft},                       // 14: all but bottom-left
	{},                                           // 15: all above
}

// EstimateFloats returns an upper bound on the floats Extract can write
// for a grid of the given dimensions and level count. Each cell emits at
// most two segments (eight floats) per level. Callers allocate the output
// buffer from this bound; Extract panics rather than writing past it.
func EstimateFloats(rows, cols, levelCount int) int {
	if rows < 2 || cols < 2 || levelCount < 1 {
		return 0
	}
	cells := (rows - 1) * (cols - 1)
	return cells * 8 * levelCount
}

// Levels returns n evenly spaced threshold values from min to max
// inclusive, ascending. Returns nil for n < 1. For n == 1 the single
// level is the midpoint of the range.
func Levels(min, max float32, n int) []float32 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float32{(min + max) / 2}
	}
	span := floats.Span(make([]float64, n), float64(min), float64(max))
	out := make([]float32, n)
	for i, v := range span {
		out[i] = float32(v)
	}
	return out
}

// ExtractLevel traces the iso-contour at a single threshold, appending
// (x1, y1, x2, y2) segment quadruples to dst at off and returning the
// number of floats written (4 per segment).
//
// values holds the grid in row-major order; xs are the column coordinates
// (length cols) and ys the row coordinates (length rows). Cells with any
// NaN corner are skipped. Panics on mismatched slice lengths or when a
// segment would be written past len(dst); size dst with EstimateFloats.
func ExtractLevel(values []float32, rows, cols int, xs, ys []float32, level float32, dst []float32, off int) int {
	checkGrid(values, rows, cols, xs, ys)
	if rows < 2 || cols < 2 {
		return 0
	}
	if off < 0 || off > len(dst) {
		panic(fmt.Sprintf("contour: offset %d out of range for buffer of %d floats", off, len(dst)))
	}

	out := off
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			v00 := values[row*cols+col]       // bottom-left
			v10 := values[row*cols+col+1]     // bottom-right
			v01 := values[(row+1)*cols+col]   // top-left
			v11 := values[(row+1)*cols+col+1] // top-right

			if math32.IsNaN(v00) || math32.IsNaN(v10) || math32.IsNaN(v01) || math32.IsNaN(v11) {
				continue
			}

			var config int
			if v00 >= level {
				config |= 1
			}
			if v10 >= level {
				config |= 2
			}
			if v11 >= level {
				config |= 4
			}
			if v01 >= level {
				config |= 8
			}

			edges := edgeTable[config]
			if len(edges) == 0 {
				continue
			}

			x0, x1 := xs[col], xs[col+1]
			y0, y1 := ys[row], ys[row+1]

			for i := 0; i < len(edges); i += 2 {
				if out+4 > len(dst) {
					panic(fmt.Sprintf("contour: output buffer overflow at %d floats; size with EstimateFloats", len(dst)))
				}
				ax, ay := edgePoint(edges[i], v00, v10, v01, v11, level, x0, x1, y0, y1)
				bx, by := edgePoint(edges[i+1], v00, v10, v01, v11, level, x0, x1, y0, y1)
				dst[out] = ax
				dst[out+1] = ay
				dst[out+2] = bx
				dst[out+3] = by
				out += 4
			}
		}
	}

	return out - off
}

// Extract traces iso-contours for every level in order, writing each
// level's segments as one contiguous block in dst starting at off.
// counts[i] receives the float count (4 x segment count) for levels[i].
// Returns the total number of floats written.
//
// Levels are processed independently in the given order; callers pass them
// ascending so downstream color mapping can index by level.
func Extract(values []float32, rows, cols int, xs, ys []float32, levels []float32, dst []float32, off int, counts []int) int {
	if len(counts) < len(levels) {
		panic(fmt.Sprintf("contour: counts length %d shorter than %d levels", len(counts), len(levels)))
	}

	total := 0
	cur := off
	for i, level := range levels {
		n := ExtractLevel(values, rows, cols, xs, ys, level, dst, cur)
		counts[i] = n
		cur += n
		total += n
	}

	if rows >= 2 && cols >= 2 {
		cells := (rows - 1) * (cols - 1)
		if skipped := nanCells(values, rows, cols); skipped*4 >= cells {
			chartx.Logger().Warn("large NaN region in contour grid",
				"skipped_cells", skipped,
				"cells", cells)
		}
	}
	return total
}

// nanCells counts cells untraceable because a corner is NaN.
func nanCells(values []float32, rows, cols int) int {
	skipped := 0
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			if math32.IsNaN(values[row*cols+col]) ||
				math32.IsNaN(values[row*cols+col+1]) ||
				math32.IsNaN(values[(row+1)*cols+col]) ||
				math32.IsNaN(values[(row+1)*cols+col+1]) {
				skipped++
			}
		}
	}
	return skipped
}

func checkGrid(values []float32, rows, cols int, xs, ys []float32) {
	if len(values) != rows*cols {
		panic(fmt.Sprintf("contour: grid length %d does not match %dx%d", len(values), rows, cols))
	}
	if len(xs) != cols {
		panic(fmt.Sprintf("contour: x coordinate length %d does not match %d columns", len(xs), cols))
	}
	if len(ys) != rows {
		panic(fmt.Sprintf("contour: y coordinate length %d does not match %d rows", len(ys), rows))
	}
}

// edgePoint returns the threshold crossing on the given cell edge,
// linearly interpolated between the two corner values.
func edgePoint(edge uint8, v00, v10, v01, v11, level, x0, x1, y0, y1 float32) (float32, float32) {
	switch edge {
	case edgeBottom:
		t := crossing(v00, v10, level)
		return lerp(x0, x1, t), y0
	case edgeRight:
		t := crossing(v10, v11, level)
		return x1, lerp(y0, y1, t)
	case edgeTop:
		t := crossing(v01, v11, level)
		return lerp(x0, x1, t), y1
	default: // edgeLeft
		t := crossing(v00, v01, level)
		return x0, lerp(y0, y1, t)
	}
}

// crossing computes where the level crosses between two corner values.
// Near-equal corners place the crossing at the edge midpoint.
func crossing(v0, v1, level float32) float32 {
	if math32.Abs(v1-v0) < 1e-10 {
		return 0.5
	}
	return (level - v0) / (v1 - v0)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
