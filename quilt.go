package quilt

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward. Edges are inclusive:
// a Rect covers the pixels [X, X+W-1] x [Y, Y+H-1].
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle with top-left corner (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x coordinate of the leftmost column.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate of the rightmost column (inclusive).
func (r Rect) Right() int { return r.X + r.W - 1 }

// Top returns the y coordinate of the topmost row.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate of the bottommost row (inclusive).
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Area returns the number of pixels covered by the rectangle.
func (r Rect) Area() int { return r.W * r.H }

// Contains reports whether other lies fully within r, edges included.
func (r Rect) Contains(other Rect) bool {
	return other.Left() >= r.Left() &&
		other.Right() <= r.Right() &&
		other.Top() >= r.Top() &&
		other.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether the pixel (x, y) lies inside r.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.Left() && x <= r.Right() &&
		y >= r.Top() && y <= r.Bottom()
}

// Intersects reports whether r and other share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() &&
		r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() &&
		r.Bottom() >= other.Top()
}

// expand returns r grown by n pixels on every side.
func (r Rect) expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}
