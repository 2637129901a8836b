package core

// Rect is an axis-aligned bounding box in logical units
// Right and Bottom are exclusive edges, matching the collision convention of the render surface
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// RectAt builds a rect from a float position, truncating toward zero
func RectAt(x, y float64, width, height int) Rect {
	return Rect{X: int(x), Y: int(y), Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// CenterX returns the horizontal midpoint
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the vertical midpoint
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether two rects overlap
// Touching edges do not count as overlap
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a rect of the given size centered inside an area
func Centered(areaWidth, areaHeight, width, height int) Rect {
	return Rect{
		X:      (areaWidth - width) / 2,
		Y:      (areaHeight - height) / 2,
		Width:  width,
		Height: height,
	}
}
