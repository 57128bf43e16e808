package curve

import (
	"fmt"

	"github.com/apokalypsix/chartx"
)

// maxAdaptiveDepth bounds the recursion of AdaptiveBezier. 2^10 subdivisions
// exceed any on-screen curvature a chart produces.
const maxAdaptiveDepth = 10

// CubicBezierFloats returns the exact number of floats CubicBezier writes.
// segments is clamped to [2, 32], matching CubicBezier.
func CubicBezierFloats(segments int) int {
	return (clampSegments(segments) + 1) * 2
}

// CubicBezier tessellates a cubic Bezier curve from p0 through handles p1
// and p2 to p3, writing segments+1 interleaved (x, y) points into dst at
// off. segments is clamped to [2, 32]. Returns the number of floats
// written. Panics if dst cannot hold CubicBezierFloats(segments) floats
// at off.
func CubicBezier(p0, p1, p2, p3 chartx.Point, segments int, dst []float32, off int) int {
	segments = clampSegments(segments)
	need := (segments + 1) * 2
	if off < 0 || off+need > len(dst) {
		panic(fmt.Sprintf("curve: output buffer too small: need %d floats at offset %d, have %d", need, off, len(dst)))
	}

	out := off
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		u := 1 - t
		u2 := u * u
		u3 := u2 * u
		t2 := t * t
		t3 := t2 * t

		// B(t) = u^3 P0 + 3u^2 t P1 + 3u t^2 P2 + t^3 P3
		dst[out] = u3*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t3*p3.X
		dst[out+1] = u3*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t3*p3.Y
		out += 2
	}

	return out - off
}

// AdaptiveBezier tessellates a cubic Bezier with curvature-adaptive
// subdivision: flat spans emit a single segment, sharp bends subdivide
// until the polyline deviates from the true curve by at most tolerance
// pixels. maxPoints caps the emitted point count as a safety limit; the
// first point is always p0. Returns the number of floats written.
// Panics if dst cannot hold maxPoints*2 floats at off.
func AdaptiveBezier(p0, p1, p2, p3 chartx.Point, tolerance float32, dst []float32, off, maxPoints int) int {
	if maxPoints < 2 {
		return 0
	}
	if off < 0 || off+maxPoints*2 > len(dst) {
		panic(fmt.Sprintf("curve: output buffer too small: need %d floats at offset %d, have %d", maxPoints*2, off, len(dst)))
	}

	dst[off] = p0.X
	dst[off+1] = p0.Y

	w := &adaptiveWriter{dst: dst, idx: off + 2, max: off + maxPoints*2}
	w.subdivide(p0, p1, p2, p3, tolerance*tolerance, 0)

	return w.idx - off
}

// adaptiveWriter carries the write cursor through the recursion.
type adaptiveWriter struct {
	dst []float32
	idx int
	max int
}

func (w *adaptiveWriter) emit(p chartx.Point) {
	w.dst[w.idx] = p.X
	w.dst[w.idx+1] = p.Y
	w.idx += 2
}

func (w *adaptiveWriter) subdivide(p0, p1, p2, p3 chartx.Point, tolSq float32, depth int) {
	if depth > maxAdaptiveDepth || w.idx >= w.max-2 {
		w.emit(p3)
		return
	}

	// de Casteljau midpoint split.
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	// Flatness: squared distance from each handle to the p0-p3 chord.
	chord := p3.Sub(p0)
	lenSq := chord.LengthSquared()

	var d1, d2 float32
	if lenSq < 1e-10 {
		// Degenerate chord: fall back to distance from p0.
		d1 = p1.Sub(p0).LengthSquared()
		d2 = p2.Sub(p0).LengthSquared()
	} else {
		c1 := p1.Sub(p0).Cross(chord)
		c2 := p2.Sub(p0).Cross(chord)
		d1 = c1 * c1 / lenSq
		d2 = c2 * c2 / lenSq
	}

	if d1 <= tolSq && d2 <= tolSq {
		w.emit(p3)
		return
	}

	w.subdivide(p0, p01, p012, mid, tolSq, depth+1)
	w.subdivide(mid, p123, p23, p3, tolSq, depth+1)
}

// BezierControlPoints derives cubic Bezier control points from count data
// points, producing count-1 curves of 8 floats each
// (P0x, P0y, C1x, C1y, C2x, C2y, P1x, P1y) with C1 continuity at the data
// points. Tangents at interior points use the neighboring points, scaled
// by tension. The resulting curves can be fed to CubicBezier one by one.
//
// Returns the number of floats written: (count-1)*8, or 0 for count < 2.
// Panics on mismatched slices, an out-of-range window, or a dst too small.
func BezierControlPoints(xs, ys []float32, start, count int, tension float32, dst []float32, off int) int {
	if count < 2 {
		return 0
	}
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("curve: coordinate length mismatch: %d x vs %d y", len(xs), len(ys)))
	}
	if start < 0 || start+count > len(xs) {
		panic(fmt.Sprintf("curve: point window [%d, %d) out of range for %d points", start, start+count, len(xs)))
	}
	need := (count - 1) * 8
	if off < 0 || off+need > len(dst) {
		panic(fmt.Sprintf("curve: output buffer too small: need %d floats at offset %d, have %d", need, off, len(dst)))
	}

	out := off
	for i := 0; i < count-1; i++ {
		idx := start + i

		x1, y1 := xs[idx], ys[idx]
		x2, y2 := xs[idx+1], ys[idx+1]

		var dx1, dy1, dx2, dy2 float32
		if i > 0 {
			dx1 = (x2 - xs[idx-1]) * tension
			dy1 = (y2 - ys[idx-1]) * tension
		} else {
			dx1 = (x2 - x1) * tension
			dy1 = (y2 - y1) * tension
		}
		if i < count-2 {
			dx2 = (xs[idx+2] - x1) * tension
			dy2 = (ys[idx+2] - y1) * tension
		} else {
			dx2 = (x2 - x1) * tension
			dy2 = (y2 - y1) * tension
		}

		dst[out] = x1
		dst[out+1] = y1
		dst[out+2] = x1 + dx1/3
		dst[out+3] = y1 + dy1/3
		dst[out+4] = x2 - dx2/3
		dst[out+5] = y2 - dy2/3
		dst[out+6] = x2
		dst[out+7] = y2
		out += 8
	}

	return out - off
}
