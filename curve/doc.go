// Package curve tessellates point sequences into dense polylines.
//
// The primary entry point is CatmullRom, which interpolates a smooth curve
// through every input point. CubicBezier, AdaptiveBezier, and
// BezierControlPoints cover renderers that shape curves from explicit
// control handles instead.
//
// All functions write interleaved (x, y) float32 pairs into a
// caller-supplied buffer at a caller-supplied offset and return the number
// of floats written. Sizing companions (CatmullRomFloats, CubicBezierFloats)
// give exact output sizes up front so callers never tessellate twice.
//
// Inputs are assumed to be contiguous non-NaN runs: callers split series
// on NaN gaps before tessellating, relying on the interpolation property
// (the output passes exactly through every input point) to keep gap edges
// aligned with data points.
package curve
