// Package stack computes cumulative (stacked) values across multiple
// series, for stacked area, bar, and column rendering.
//
// A Calculator stacks a bottom-to-top list of series over a visible index
// range and exposes per-point baselines and tops in data units. Positive
// and negative values accumulate in separate stacks from the zero line,
// so mixed-sign data renders as bars growing in both directions. Percent
// mode normalizes each point against the total of its own sign, yielding
// spans in the 0..100 range (mirrored below zero for negatives).
//
// Results are cached: recomputing with the same series list, range, and
// mode is free until the data changes shape or Invalidate is called.
package stack
