package treemap

import "github.com/apokalypsix/chartx"

// Node is a node in a treemap or sunburst hierarchy. Nodes carry data
// only; resolved geometry lives in a LayoutCache.
type Node struct {
	// ID identifies the node within its tree. Not required to be
	// globally unique, but Find returns the first match in pre-order.
	ID string

	// Label is the display text. May be empty.
	Label string

	// Value is the node's own weight. For interior nodes the layout
	// uses AggregateValue, the sum over the leaves below.
	Value float64

	// Color is an optional display color. The zero value means "unset";
	// renderers substitute their palette default.
	Color chartx.RGBA

	parent   *Node
	children []*Node
	depth    int
}

// NewNode creates a detached node with depth 0.
func NewNode(id, label string, value float64) *Node {
	return &Node{ID: id, Label: label, Value: value}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order. The returned
// slice is the node's own; callers must not reorder it, since treemap
// packing is order-sensitive.
func (n *Node) Children() []*Node { return n.children }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Depth returns the node's depth: 0 for a root, parent depth + 1 below.
func (n *Node) Depth() int { return n.depth }

// AddChild attaches child to n, reparenting it and recomputing depths
// for the attached subtree.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	child.updateDepths(n.depth + 1)
	n.children = append(n.children, child)
}

// NewChild creates a node and attaches it to n in one step.
func (n *Node) NewChild(id, label string, value float64) *Node {
	child := NewNode(id, label, value)
	n.AddChild(child)
	return child
}

func (n *Node) updateDepths(depth int) {
	n.depth = depth
	for _, c := range n.children {
		c.updateDepths(depth + 1)
	}
}

// AggregateValue returns the sum of all leaf values under the node, or
// the node's own value for a leaf.
func (n *Node) AggregateValue() float64 {
	if n.IsLeaf() {
		return n.Value
	}
	var sum float64
	for _, c := range n.children {
		sum += c.AggregateValue()
	}
	return sum
}

// Flatten returns the subtree in pre-order.
func (n *Node) Flatten() []*Node {
	var out []*Node
	n.walk(func(node *Node) { out = append(out, node) })
	return out
}

// Leaves returns all leaf nodes in the subtree, in pre-order.
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.walk(func(node *Node) {
		if node.IsLeaf() {
			out = append(out, node)
		}
	})
	return out
}

// NodesAtDepth returns all descendants (including n itself) at exactly
// the given depth.
func (n *Node) NodesAtDepth(depth int) []*Node {
	var out []*Node
	n.collectAtDepth(depth, &out)
	return out
}

func (n *Node) collectAtDepth(depth int, out *[]*Node) {
	switch {
	case n.depth == depth:
		*out = append(*out, n)
	case n.depth < depth:
		for _, c := range n.children {
			c.collectAtDepth(depth, out)
		}
	}
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

// Tree wraps a hierarchy behind a synthetic root node and caches the
// aggregate total and maximum depth across structural edits.
type Tree struct {
	name string
	root *Node

	// Cached derived values; negative means stale.
	maxDepth   int
	totalValue float64
}

// NewTree creates an empty hierarchy. name is carried for display only.
func NewTree(name string) *Tree {
	return &Tree{
		name:       name,
		root:       NewNode("root", name, 0),
		maxDepth:   -1,
		totalValue: -1,
	}
}

// Name returns the display name given at construction.
func (t *Tree) Name() string { return t.name }

// Root returns the synthetic root node.
func (t *Tree) Root() *Node { return t.root }

// AddNode attaches a new top-level node under the root.
func (t *Tree) AddNode(id, label string, value float64) *Node {
	t.Invalidate()
	return t.root.NewChild(id, label, value)
}

// MaxDepth returns the depth of the deepest node.
func (t *Tree) MaxDepth() int {
	if t.maxDepth < 0 {
		t.maxDepth = maxDepthBelow(t.root)
	}
	return t.maxDepth
}

func maxDepthBelow(n *Node) int {
	max := n.depth
	for _, c := range n.children {
		if d := maxDepthBelow(c); d > max {
			max = d
		}
	}
	return max
}

// TotalValue returns the aggregate value of the whole hierarchy.
func (t *Tree) TotalValue() float64 {
	if t.totalValue < 0 {
		t.totalValue = t.root.AggregateValue()
	}
	return t.totalValue
}

// Find returns the first node with the given ID in pre-order, or nil.
func (t *Tree) Find(id string) *Node {
	var found *Node
	t.root.walk(func(n *Node) {
		if found == nil && n.ID == id {
			found = n
		}
	})
	return found
}

// Invalidate drops cached derived values after structural changes made
// directly through node methods (AddChild on an attached node, value
// edits).
func (t *Tree) Invalidate() {
	t.maxDepth = -1
	t.totalValue = -1
}
