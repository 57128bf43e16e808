// Package arc tessellates circular geometry for pie, donut, gauge, and
// polar series: filled wedges and annular sectors as triangle lists, and
// their outlines as line lists.
//
// Every function appends 6-float vertices (x, y, r, g, b, a) to a
// caller-supplied buffer at a caller-supplied offset and returns the new
// write offset, so per-frame loops chain calls across hundreds of nodes or
// gauge zones without allocating. Angles are radians; callers normalize
// sweep direction so start <= end before calling.
//
// Degenerate input (fewer than one segment, a non-positive radius, an
// outer radius at or below the inner, an empty sweep) emits nothing and
// returns the offset unchanged. Sizing companions (ArcFloats,
// PieSliceFloats, DonutSegmentFloats, and the border variants) give exact
// float counts for pre-allocation; writing past the buffer panics instead
// of truncating.
package arc
