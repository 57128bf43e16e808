package arc

import (
	"fmt"
	"math"

	"github.com/apokalypsix/chartx"
)

// floatsPerVertex is the interleaved vertex layout: x, y, r, g, b, a.
const floatsPerVertex = 6

// ArcFloats returns the exact number of floats Arc appends for the given
// segment count: two line vertices per segment.
func ArcFloats(segments int) int {
	if segments < 1 {
		return 0
	}
	return segments * 2 * floatsPerVertex
}

// PieSliceFloats returns the exact number of floats PieSlice appends:
// one triangle per segment, fanned from the center.
func PieSliceFloats(segments int) int {
	if segments < 1 {
		return 0
	}
	return segments * 3 * floatsPerVertex
}

// DonutSegmentFloats returns the exact number of floats DonutSegment
// appends: two triangles per segment.
func DonutSegmentFloats(segments int) int {
	if segments < 1 {
		return 0
	}
	return segments * 6 * floatsPerVertex
}

// PieSliceBorderFloats returns the exact number of floats PieSliceBorder
// appends: the two radial edges plus the outer arc, as line pairs.
func PieSliceBorderFloats(arcSegments int) int {
	if arcSegments < 1 {
		return 0
	}
	return (4 + arcSegments*2) * floatsPerVertex
}

// DonutSegmentBorderFloats returns an upper bound on the floats
// DonutSegmentBorder appends: both radial edges plus inner and outer arcs.
// Exact for innerRadius > 0; a zero inner radius drops the inner arc.
func DonutSegmentBorderFloats(arcSegments int) int {
	if arcSegments < 1 {
		return 0
	}
	return (4 + arcSegments*4) * floatsPerVertex
}

// Segments returns a segment count keeping each chord at or below
// maxSegmentLength pixels over the given radius and angular span,
// clamped to [1, 360].
func Segments(radius float32, angleSpan float64, maxSegmentLength float32) int {
	if radius <= 0 || maxSegmentLength <= 0 {
		return 1
	}
	arcLength := float64(radius) * math.Abs(angleSpan)
	segments := int(math.Ceil(arcLength / float64(maxSegmentLength)))
	return clamp(segments, 1, 360)
}

// SegmentsForSpan returns a segment count from the angular span alone,
// about one segment per six degrees, clamped to [1, 60].
func SegmentsForSpan(angleSpan float64) int {
	segments := int(math.Ceil(math.Abs(angleSpan) / (math.Pi / 30)))
	return clamp(segments, 1, 60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Arc appends line vertices tracing a circular arc from startAngle to
// endAngle, two vertices per segment, and returns the new write offset.
// Degenerate input (segments < 1, radius <= 0, empty sweep) appends
// nothing.
func Arc(dst []float32, off int, center chartx.Point, radius float32, startAngle, endAngle float64, segments int, col chartx.RGBA) int {
	if segments < 1 || radius <= 0 || startAngle == endAngle {
		return off
	}
	checkRoom(dst, off, ArcFloats(segments))

	step := (endAngle - startAngle) / float64(segments)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		a2 := startAngle + float64(i+1)*step
		off = vertex(dst, off, onCircle(center, radius, a1), col)
		off = vertex(dst, off, onCircle(center, radius, a2), col)
	}
	return off
}

// PieSlice appends triangles for a filled wedge fanned from the center,
// one triangle per segment, and returns the new write offset.
func PieSlice(dst []float32, off int, center chartx.Point, radius float32, startAngle, endAngle float64, segments int, col chartx.RGBA) int {
	if segments < 1 || radius <= 0 || startAngle == endAngle {
		return off
	}
	checkRoom(dst, off, PieSliceFloats(segments))

	step := (endAngle - startAngle) / float64(segments)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		a2 := startAngle + float64(i+1)*step
		off = vertex(dst, off, center, col)
		off = vertex(dst, off, onCircle(center, radius, a1), col)
		off = vertex(dst, off, onCircle(center, radius, a2), col)
	}
	return off
}

// ExplodedPieSlice appends a pie slice pushed away from the center along
// its bisector by explodeOffset pixels.
func ExplodedPieSlice(dst []float32, off int, center chartx.Point, radius float32, startAngle, endAngle float64, segments int, explodeOffset float32, col chartx.RGBA) int {
	return PieSlice(dst, off, explode(center, startAngle, endAngle, explodeOffset), radius, startAngle, endAngle, segments, col)
}

// DonutSegment appends triangles for an annular sector: segments quads of
// two triangles each, joining the inner and outer radii at segments+1
// angular steps. Returns the new write offset. Degenerate input
// (segments < 1, outer <= inner, inner < 0, empty sweep) appends nothing.
func DonutSegment(dst []float32, off int, center chartx.Point, innerRadius, outerRadius float32, startAngle, endAngle float64, segments int, col chartx.RGBA) int {
	if segments < 1 || innerRadius < 0 || outerRadius <= innerRadius || startAngle == endAngle {
		return off
	}
	checkRoom(dst, off, DonutSegmentFloats(segments))

	step := (endAngle - startAngle) / float64(segments)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		a2 := startAngle + float64(i+1)*step

		inner1 := onCircle(center, innerRadius, a1)
		inner2 := onCircle(center, innerRadius, a2)
		outer1 := onCircle(center, outerRadius, a1)
		outer2 := onCircle(center, outerRadius, a2)

		// Triangle 1: inner1 -> outer1 -> outer2
		off = vertex(dst, off, inner1, col)
		off = vertex(dst, off, outer1, col)
		off = vertex(dst, off, outer2, col)

		// Triangle 2: inner1 -> outer2 -> inner2
		off = vertex(dst, off, inner1, col)
		off = vertex(dst, off, outer2, col)
		off = vertex(dst, off, inner2, col)
	}
	return off
}

// ExplodedDonutSegment appends a donut segment pushed away from the
// center along its bisector by explodeOffset pixels.
func ExplodedDonutSegment(dst []float32, off int, center chartx.Point, innerRadius, outerRadius float32, startAngle, endAngle float64, segments int, explodeOffset float32, col chartx.RGBA) int {
	return DonutSegment(dst, off, explode(center, startAngle, endAngle, explodeOffset), innerRadius, outerRadius, startAngle, endAngle, segments, col)
}

// Ring appends triangles for a full annulus.
func Ring(dst []float32, off int, center chartx.Point, innerRadius, outerRadius float32, segments int, col chartx.RGBA) int {
	return DonutSegment(dst, off, center, innerRadius, outerRadius, 0, 2*math.Pi, segments, col)
}

// Circle appends triangles for a filled circle.
func Circle(dst []float32, off int, center chartx.Point, radius float32, segments int, col chartx.RGBA) int {
	return PieSlice(dst, off, center, radius, 0, 2*math.Pi, segments, col)
}

// GaugeArc appends triangles for a thick gauge zone. sweepAngle may be
// negative; the sweep is normalized so the emitted geometry is identical
// either way.
func GaugeArc(dst []float32, off int, center chartx.Point, innerRadius, outerRadius float32, startAngle, sweepAngle float64, segments int, col chartx.RGBA) int {
	if sweepAngle < 0 {
		startAngle += sweepAngle
		sweepAngle = -sweepAngle
	}
	return DonutSegment(dst, off, center, innerRadius, outerRadius, startAngle, startAngle+sweepAngle, segments, col)
}

// PieSliceBorder appends line vertices outlining a pie slice: the radial
// edge to the arc start, the arc itself, and the radial edge back to the
// center. Returns the new write offset.
func PieSliceBorder(dst []float32, off int, center chartx.Point, radius float32, startAngle, endAngle float64, arcSegments int, col chartx.RGBA) int {
	if arcSegments < 1 || radius <= 0 || startAngle == endAngle {
		return off
	}
	checkRoom(dst, off, PieSliceBorderFloats(arcSegments))

	start := onCircle(center, radius, startAngle)
	end := onCircle(center, radius, endAngle)

	off = vertex(dst, off, center, col)
	off = vertex(dst, off, start, col)
	off = Arc(dst, off, center, radius, startAngle, endAngle, arcSegments, col)
	off = vertex(dst, off, end, col)
	off = vertex(dst, off, center, col)
	return off
}

// DonutSegmentBorder appends line vertices outlining an annular sector:
// both radial edges plus the inner and outer arcs (the inner traced in
// reverse so the outline runs as a loop). Returns the new write offset.
func DonutSegmentBorder(dst []float32, off int, center chartx.Point, innerRadius, outerRadius float32, startAngle, endAngle float64, arcSegments int, col chartx.RGBA) int {
	if arcSegments < 1 || innerRadius < 0 || outerRadius <= innerRadius || startAngle == endAngle {
		return off
	}
	checkRoom(dst, off, DonutSegmentBorderFloats(arcSegments))

	inner1 := onCircle(center, innerRadius, startAngle)
	inner2 := onCircle(center, innerRadius, endAngle)
	outer1 := onCircle(center, outerRadius, startAngle)
	outer2 := onCircle(center, outerRadius, endAngle)

	off = vertex(dst, off, inner1, col)
	off = vertex(dst, off, outer1, col)
	off = Arc(dst, off, center, outerRadius, startAngle, endAngle, arcSegments, col)
	off = vertex(dst, off, outer2, col)
	off = vertex(dst, off, inner2, col)
	if innerRadius > 0 {
		off = Arc(dst, off, center, innerRadius, endAngle, startAngle, arcSegments, col)
	}
	return off
}

func onCircle(center chartx.Point, radius float32, angle float64) chartx.Point {
	return chartx.Point{
		X: center.X + radius*float32(math.Cos(angle)),
		Y: center.Y + radius*float32(math.Sin(angle)),
	}
}

func explode(center chartx.Point, startAngle, endAngle float64, offset float32) chartx.Point {
	mid := (startAngle + endAngle) / 2
	return chartx.Point{
		X: center.X + offset*float32(math.Cos(mid)),
		Y: center.Y + offset*float32(math.Sin(mid)),
	}
}

func vertex(dst []float32, off int, p chartx.Point, col chartx.RGBA) int {
	dst[off] = p.X
	dst[off+1] = p.Y
	dst[off+2] = col.R
	dst[off+3] = col.G
	dst[off+4] = col.B
	dst[off+5] = col.A
	return off + floatsPerVertex
}

func checkRoom(dst []float32, off, need int) {
	if off < 0 || off+need > len(dst) {
		panic(fmt.Sprintf("arc: output buffer too small: need %d floats at offset %d, have %d", need, off, len(dst)))
	}
}
