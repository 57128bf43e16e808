// Package datagen produces deterministic synthetic inputs for demos,
// benchmarks, and tests: random-walk value series, smooth scalar grids
// for contouring, weighted hierarchies for treemap and sunburst layout,
// and stacked series groups.
//
// All generators take an explicit seed and return identical output for
// identical arguments.
package datagen
