package geom

// Rect is an integer pixel rectangle. Min is inclusive, Max exclusive,
// matching the image package convention.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// RectXYWH builds a rectangle from an origin and extent.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.MaxY - r.MinY
}

// Area returns width * height.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Intersect returns the largest rectangle contained in both r and other.
// The result is Empty if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	if other.MinX > r.MinX {
		r.MinX = other.MinX
	}
	if other.MinY > r.MinY {
		r.MinY = other.MinY
	}
	if other.MaxX < r.MaxX {
		r.MaxX = other.MaxX
	}
	if other.MaxY < r.MaxY {
		r.MaxY = other.MaxY
	}
	return r
}

// Overlaps reports whether r and other share at least one pixel.
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).Empty()
}

// In reports whether r lies fully within other.
func (r Rect) In(other Rect) bool {
	if r.Empty() {
		return true
	}
	return r.MinX >= other.MinX && r.MinY >= other.MinY &&
		r.MaxX <= other.MaxX && r.MaxY <= other.MaxY
}
