// Package contour extracts iso-contour line segments from 2D scalar grids
// using the Marching Squares algorithm.
//
// The grid is a row-major float32 slice with independent per-column x and
// per-row y coordinate slices, so non-uniform spacing comes for free. Each
// 2x2 cell is classified by which corners sit at or above the threshold;
// crossings are placed by linear interpolation along the cell edges. Output
// segments are flat (x1, y1, x2, y2) quadruples ready for line-mode upload.
//
// Cells touching a NaN corner are skipped for every level, which
// under-reports contours near missing data. Callers treat this as a known
// coverage limitation rather than an error.
//
// Saddle cells (configurations 5 and 10, where diagonally opposite corners
// straddle the threshold) always resolve with a fixed pairing: configuration
// 5 connects (left, bottom) and (right, top), configuration 10 connects
// (bottom, right) and (top, left). The choice is arbitrary between the two
// topologically valid pairings but applied consistently.
package contour
