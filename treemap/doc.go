// Package treemap lays out weighted node hierarchies for treemap and
// sunburst series.
//
// A hierarchy is a Tree of Nodes, each carrying a value, a label, an
// optional color, and a depth assigned at build time. Nodes never store
// their own geometry: Layout (squarified rectangles) and SunburstLayout
// (angular spans) write results into an external LayoutCache owned by the
// calling series, so the same hierarchy can be laid out differently by
// several views at once.
//
// Layout implements the squarified treemap algorithm of Bruls, Huizing,
// and van Wijk, peeling rows of descending-value children into whichever
// orientation keeps the worst aspect ratio lowest. Cells smaller than
// MinCellSize still receive geometry (hit-testing stays continuous);
// VisibleNodes filters them out for rendering.
package treemap
