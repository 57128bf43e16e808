// Package chartx provides the computational geometry and layout engine
// behind 2D chart series renderers.
//
// # Overview
//
// chartx turns typed numeric data into flat float32 vertex buffers that a
// renderer uploads verbatim to a GPU buffer abstraction. The engine itself
// never touches a device: every component is a pure function (or a small
// single-owner cache) over numeric slices, operating in pixel space.
//
// The algorithmic core lives in the subpackages:
//
//   - curve: Catmull-Rom spline and Bezier tessellation
//   - contour: iso-contour extraction via Marching Squares
//   - arc: circular tessellation (arcs, pie slices, donut segments, gauges)
//   - treemap: squarified treemap and sunburst layout over node hierarchies
//   - stack: cumulative and percent-of-total multi-series stacking
//   - render: the buffer/draw boundary the engine's output feeds
//   - datagen: deterministic synthetic data for demos and benchmarks
//
// The root package holds the shared float32 primitives (Point, Rect, RGBA),
// the output-buffer growth helper, and the library logger.
//
// # Buffers and capacity
//
// Components write into caller-supplied float32 slices at a caller-supplied
// offset and return the number of floats written. Each writing function has
// a companion sizing function (an exact upper bound) so callers can allocate
// before tessellating; GrowFloats implements the geometric growth callers
// use between frames. Degenerate input (empty ranges, non-positive radii or
// segment counts) writes nothing and returns zero rather than erroring.
// Structural contract violations (mismatched slice lengths, an output
// buffer smaller than the sizing function demands) panic.
//
// # Missing data
//
// NaN is the gap sentinel throughout: spline callers split point runs on
// NaN before tessellating, the contour extractor skips cells touching a NaN
// corner, and the stacking calculator reports NaN baseline/top for a series
// with a NaN value while series above it keep stacking.
//
// # Concurrency
//
// Everything here is synchronous and allocation-light. The treemap layout
// cache and the stacking calculator are mutable and not safe for concurrent
// use; each rendering series owns its own instance.
package chartx
