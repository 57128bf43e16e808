package treemap

import "github.com/apokalypsix/chartx"

// LayoutCache stores resolved per-node geometry separately from the
// shared Node objects, keyed by node identity. Multiple series can lay
// out the same hierarchy into independent caches without overwriting
// each other.
//
// For rectangular layouts the four values are (x, y, width, height); for
// sunburst layouts they are (startAngle, endAngle, 0, 0) in degrees.
//
// A LayoutCache is owned by a single series and is not safe for
// concurrent use.
type LayoutCache struct {
	geom map[*Node][4]float32
}

// NewLayoutCache creates an empty cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{geom: make(map[*Node][4]float32)}
}

// Set stores the four layout values for a node.
func (c *LayoutCache) Set(n *Node, v0, v1, v2, v3 float32) {
	c.geom[n] = [4]float32{v0, v1, v2, v3}
}

// Has reports whether the node has resolved geometry.
func (c *LayoutCache) Has(n *Node) bool {
	_, ok := c.geom[n]
	return ok
}

// X returns the first layout value (x for treemap, start angle for
// sunburst), or 0 for a node without geometry.
func (c *LayoutCache) X(n *Node) float32 { return c.geom[n][0] }

// Y returns the second layout value (y for treemap, end angle for
// sunburst), or 0 for a node without geometry.
func (c *LayoutCache) Y(n *Node) float32 { return c.geom[n][1] }

// Width returns the third layout value, or 0 for a node without geometry.
func (c *LayoutCache) Width(n *Node) float32 { return c.geom[n][2] }

// Height returns the fourth layout value, or 0 for a node without geometry.
func (c *LayoutCache) Height(n *Node) float32 { return c.geom[n][3] }

// Rect returns the node's rectangle for rectangular layouts.
func (c *LayoutCache) Rect(n *Node) chartx.Rect {
	g := c.geom[n]
	return chartx.Rect{X: g[0], Y: g[1], W: g[2], H: g[3]}
}

// StartAngle returns the sunburst start angle in degrees (alias for X).
func (c *LayoutCache) StartAngle(n *Node) float32 { return c.X(n) }

// EndAngle returns the sunburst end angle in degrees (alias for Y).
func (c *LayoutCache) EndAngle(n *Node) float32 { return c.Y(n) }

// Len returns the number of nodes with resolved geometry.
func (c *LayoutCache) Len() int { return len(c.geom) }

// Clear drops all geometry. Called before each full relayout.
func (c *LayoutCache) Clear() {
	clear(c.geom)
}
