package chartx

// RGBA is a premultiplication-agnostic color with components in [0, 1].
// Tessellators interleave these four floats after each vertex position
// when emitting position+color vertices.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque RGBA color.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}
