package chartx

// Rect represents an axis-aligned rectangle as origin plus extent.
// Chart layout code works in screen convention: (X, Y) is the top-left
// corner, W and H grow right and down.
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a rectangle from origin and extent.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Area returns the rectangle area. Negative extents yield a
// meaningless area; callers guard with IsEmpty first.
func (r Rect) Area() float32 {
	return r.W * r.H
}

// IsEmpty reports whether the rectangle has no positive extent.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ContainsRect returns true if s lies entirely within r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.X >= r.X && s.Y >= r.Y && s.Right() <= r.Right() && s.Bottom() <= r.Bottom()
}

// Inset returns the rectangle shrunk by pad on all four sides.
func (r Rect) Inset(pad float32) Rect {
	return Rect{
		X: r.X + pad,
		Y: r.Y + pad,
		W: r.W - 2*pad,
		H: r.H - 2*pad,
	}
}
