package treemap

import (
	"math"
	"sort"

	"github.com/apokalypsix/chartx"
	"gonum.org/v1/gonum/floats"
)

// Squarify computes squarified treemap layouts. The zero value uses no
// padding, no minimum cell size, and no headers; DefaultSquarify matches
// the renderer defaults.
//
// A Squarify is stateless between calls and may be shared, but the
// LayoutCache it writes into belongs to a single series.
type Squarify struct {
	// Padding is subtracted from all four sides of a node's interior
	// before its children are placed.
	Padding float32

	// MinCellSize filters VisibleNodes: cells with either extent below
	// it keep their geometry (hit-testing stays continuous) but are
	// excluded from rendering, along with their subtrees.
	MinCellSize float32

	// HeaderHeight reserves space at the top of every non-leaf interior
	// for a title bar. Zero disables headers.
	HeaderHeight float32
}

// DefaultSquarify mirrors the default series options.
var DefaultSquarify = Squarify{Padding: 2, MinCellSize: 4}

// Layout assigns rectangles to every node in the hierarchy, writing all
// geometry into cache. The root receives bounds verbatim; descendants are
// packed recursively. Existing cache contents for other trees are left
// untouched; callers Clear the cache before a full relayout.
func (s *Squarify) Layout(tree *Tree, bounds chartx.Rect, cache *LayoutCache) {
	root := tree.Root()
	cache.Set(root, bounds.X, bounds.Y, bounds.W, bounds.H)
	s.LayoutChildren(root, bounds, cache)

	chartx.Logger().Debug("treemap layout",
		"tree", tree.Name(),
		"nodes", cache.Len(),
		"bounds_w", bounds.W,
		"bounds_h", bounds.H)
}

// LayoutChildren packs parent's children into bounds (minus padding and
// header) and recurses. Parents with no children, no positive aggregate
// value, or no positive interior are skipped.
func (s *Squarify) LayoutChildren(parent *Node, bounds chartx.Rect, cache *LayoutCache) {
	children := parent.Children()
	if len(children) == 0 {
		return
	}

	inner := bounds.Inset(s.Padding)
	inner.Y += s.HeaderHeight
	inner.H -= s.HeaderHeight
	if inner.IsEmpty() {
		return
	}

	// Descending aggregate value gives the classic squarified look:
	// large blocks gravitate to the top-left.
	sorted := make([]*Node, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AggregateValue() > sorted[j].AggregateValue()
	})

	values := make([]float64, len(sorted))
	for i, c := range sorted {
		values[i] = c.AggregateValue()
	}
	total := floats.Sum(values)
	if total <= 0 {
		return
	}

	// Normalize values to areas within the interior.
	areaScale := float64(inner.W) * float64(inner.H) / total
	areas := values
	floats.Scale(areaScale, areas)

	s.squarify(sorted, areas, inner, cache)

	for _, child := range children {
		s.LayoutChildren(child, cache.Rect(child), cache)
	}
}

// LayoutFlat packs a flat node list (no recursion) into bounds using the
// nodes' own values.
func (s *Squarify) LayoutFlat(nodes []*Node, bounds chartx.Rect, cache *LayoutCache) {
	if len(nodes) == 0 {
		return
	}

	inner := bounds.Inset(s.Padding)
	if inner.IsEmpty() {
		return
	}

	sorted := make([]*Node, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	values := make([]float64, len(sorted))
	for i, n := range sorted {
		values[i] = n.Value
	}
	total := floats.Sum(values)
	if total <= 0 {
		return
	}

	floats.Scale(float64(inner.W)*float64(inner.H)/total, values)
	s.squarify(sorted, values, inner, cache)
}

// VisibleNodes returns the nodes large enough to render, in pre-order.
// A node below MinCellSize prunes its whole subtree.
func (s *Squarify) VisibleNodes(tree *Tree, cache *LayoutCache) []*Node {
	var out []*Node
	s.collectVisible(tree.Root(), cache, &out)
	return out
}

func (s *Squarify) collectVisible(n *Node, cache *LayoutCache, out *[]*Node) {
	if cache.Width(n) < s.MinCellSize || cache.Height(n) < s.MinCellSize {
		return
	}
	*out = append(*out, n)
	for _, c := range n.Children() {
		s.collectVisible(c, cache, out)
	}
}

// squarify packs nodes (with precomputed areas) into rect by repeatedly
// peeling off a run of nodes into a row along the shorter side, accepting
// each node while it does not worsen the row's worst aspect ratio.
func (s *Squarify) squarify(nodes []*Node, areas []float64, rect chartx.Rect, cache *LayoutCache) {
	if len(nodes) == 0 {
		return
	}
	if len(nodes) == 1 {
		cache.Set(nodes[0], rect.X, rect.Y, rect.W, rect.H)
		return
	}

	horizontal := rect.W >= rect.H
	side := rect.H
	if !horizontal {
		side = rect.W
	}

	var (
		rowStart int
		rowArea  float64
		offset   float32
	)

	for i := range nodes {
		rowLen := i - rowStart
		newArea := rowArea + areas[i]

		worstBefore := worstAspect(areas[rowStart:i], side, rowArea)
		worstAfter := worstAspect(areas[rowStart:i+1], side, newArea)

		if rowLen == 0 || worstAfter <= worstBefore {
			rowArea = newArea
			continue
		}

		// Close the current row and start a new one with node i.
		rowWidth := float32(rowArea / float64(side))
		s.layoutRow(nodes[rowStart:i], areas[rowStart:i], horizontal, rect, offset, rowWidth, cache)
		offset += rowWidth
		rowStart = i
		rowArea = areas[i]
	}

	rowWidth := float32(rowArea / float64(side))
	s.layoutRow(nodes[rowStart:], areas[rowStart:], horizontal, rect, offset, rowWidth, cache)
}

// worstAspect returns the worst (largest) cell aspect ratio if the given
// areas form one row of the given total area along side.
func worstAspect(areas []float64, side float32, totalArea float64) float64 {
	if len(areas) == 0 || totalArea <= 0 || side <= 0 {
		return math.MaxFloat64
	}
	rowWidth := totalArea / float64(side)
	if rowWidth <= 0 {
		return math.MaxFloat64
	}

	var worst float64
	for _, area := range areas {
		cellHeight := area / rowWidth
		if cellHeight <= 0 {
			return math.MaxFloat64
		}
		ratio := rowWidth / cellHeight
		if ratio < 1 {
			ratio = 1 / ratio
		}
		if ratio > worst {
			worst = ratio
		}
	}
	return worst
}

// layoutRow places one closed row of nodes. offset is the distance of the
// row from the rect origin along the long axis; rowWidth is the row's
// extent along that axis.
func (s *Squarify) layoutRow(row []*Node, areas []float64, horizontal bool, rect chartx.Rect, offset, rowWidth float32, cache *LayoutCache) {
	var cellOffset float32
	for i, node := range row {
		cellSize := float32(areas[i] / float64(rowWidth))

		if horizontal {
			cache.Set(node, rect.X+offset, rect.Y+cellOffset, rowWidth, cellSize)
		} else {
			cache.Set(node, rect.X+cellOffset, rect.Y+offset, cellSize, rowWidth)
		}
		cellOffset += cellSize
	}
}
