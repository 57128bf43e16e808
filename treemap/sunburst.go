package treemap

import "github.com/apokalypsix/chartx"

// SunburstLayout assigns angular spans to a hierarchy for radial
// rendering. Each node's span covers its share of the parent's aggregate
// value; results are written into the same LayoutCache type the
// rectangular layout uses, as (startAngle, endAngle, 0, 0) in degrees.
type SunburstLayout struct {
	// SegmentGap is the angular gap in degrees inserted between sibling
	// spans. Zero packs siblings edge to edge.
	SegmentGap float64
}

// Layout assigns spans over the full circle (0..360 degrees).
func (s *SunburstLayout) Layout(tree *Tree, cache *LayoutCache) {
	s.LayoutSpan(tree, 0, 360, cache)
}

// LayoutSpan assigns spans within [startAngle, endAngle] degrees.
// Children with a non-positive share receive no geometry.
func (s *SunburstLayout) LayoutSpan(tree *Tree, startAngle, endAngle float64, cache *LayoutCache) {
	s.assign(tree.Root(), startAngle, endAngle, cache)

	chartx.Logger().Debug("sunburst layout",
		"tree", tree.Name(),
		"nodes", cache.Len(),
		"span", endAngle-startAngle)
}

func (s *SunburstLayout) assign(n *Node, startAngle, endAngle float64, cache *LayoutCache) {
	cache.Set(n, float32(startAngle), float32(endAngle), 0, 0)

	if n.IsLeaf() {
		return
	}
	total := n.AggregateValue()
	if total <= 0 {
		return
	}

	// Gaps are reserved up front; each child takes its value share of
	// what remains.
	usable := (endAngle - startAngle) - s.SegmentGap*float64(len(n.Children()))
	cur := startAngle
	for _, child := range n.Children() {
		span := usable * (child.AggregateValue() / total)
		if span <= 0 {
			continue
		}
		s.assign(child, cur, cur+span, cache)
		cur += span + s.SegmentGap
	}
}
