package curve

import "fmt"

// DefaultTension is the standard Catmull-Rom tension. Lower values pull
// the curve tight against the control polygon, higher values round it out.
const DefaultTension = 0.5

// Tessellation density bounds. Values outside this range are clamped by
// both CatmullRom and CatmullRomFloats so the sizing function stays an
// exact bound for the tessellator.
const (
	minSegments = 2
	maxSegments = 32
)

func clampSegments(segments int) int {
	if segments < minSegments {
		return minSegments
	}
	if segments > maxSegments {
		return maxSegments
	}
	return segments
}

// CatmullRomFloats returns the exact number of floats CatmullRom writes
// for count input points at the given density. Callers use it to size the
// output buffer without running the tessellation.
func CatmullRomFloats(count, segmentsPerInterval int) int {
	if count < 2 {
		return 0
	}
	segmentsPerInterval = clampSegments(segmentsPerInterval)
	// count-1 intervals, segmentsPerInterval points each, plus the
	// final input point.
	return ((count-1)*segmentsPerInterval + 1) * 2
}

// CatmullRom tessellates a Catmull-Rom spline through count points taken
// from xs and ys starting at start, writing interleaved (x, y) pairs into
// dst at off and returning the number of floats written.
//
// Each interval [P(i), P(i+1)] is interpolated from the four control
// points {P(i-1), P(i), P(i+1), P(i+2)}, clamping to the first and last
// point at the sequence boundaries. The output passes exactly through
// every input point at interval boundaries, and its first and last points
// equal the first and last inputs.
//
// tension shapes the tangents: 0 hugs the control polygon, DefaultTension
// (0.5) is the standard Catmull-Rom curve, 1 is loose and rounded.
// segmentsPerInterval is clamped to [2, 32].
//
// count < 2 is a no-op returning 0: there is nothing to draw.
// Mismatched slice lengths, an out-of-range [start, start+count) window,
// or a dst too small for CatmullRomFloats(count, segmentsPerInterval)
// floats panic.
func CatmullRom(xs, ys []float32, start, count, segmentsPerInterval int, tension float32, dst []float32, off int) int {
	if count < 2 {
		return 0
	}
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("curve: coordinate length mismatch: %d x vs %d y", len(xs), len(ys)))
	}
	if start < 0 || start+count > len(xs) {
		panic(fmt.Sprintf("curve: point window [%d, %d) out of range for %d points", start, start+count, len(xs)))
	}
	segmentsPerInterval = clampSegments(segmentsPerInterval)
	need := CatmullRomFloats(count, segmentsPerInterval)
	if off < 0 || off+need > len(dst) {
		panic(fmt.Sprintf("curve: output buffer too small: need %d floats at offset %d, have %d", need, off, len(dst)))
	}

	out := off
	for i := 0; i < count-1; i++ {
		idx := start + i

		// Four control points, clamped at the run boundaries.
		x0, y0 := xs[idx], ys[idx]
		if i > 0 {
			x0, y0 = xs[idx-1], ys[idx-1]
		}
		x1, y1 := xs[idx], ys[idx]
		x2, y2 := xs[idx+1], ys[idx+1]
		x3, y3 := xs[idx+1], ys[idx+1]
		if i < count-2 {
			x3, y3 = xs[idx+2], ys[idx+2]
		}

		for s := 0; s < segmentsPerInterval; s++ {
			t := float32(s) / float32(segmentsPerInterval)
			t2 := t * t
			t3 := t2 * t
			c := tension

			b0 := -c*t + 2*c*t2 - c*t3
			b1 := 1 + (c-3)*t2 + (2-c)*t3
			b2 := c*t + (3-2*c)*t2 + (c-2)*t3
			b3 := -c*t2 + c*t3

			dst[out] = x0*b0 + x1*b1 + x2*b2 + x3*b3
			dst[out+1] = y0*b0 + y1*b1 + y2*b2 + y3*b3
			out += 2
		}
	}

	// Final input point closes the polyline exactly.
	last := start + count - 1
	dst[out] = xs[last]
	dst[out+1] = ys[last]
	out += 2

	return out - off
}
