package world

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAround returns the box centred on (x, y) with the given half-extent.
func RectAround(x, y, half float64) Rect {
	return Rect{
		MinX: x - half,
		MinY: y - half,
		MaxX: x + half,
		MaxY: y + half,
	}
}

// Intersects returns true if this box overlaps another.
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX < other.MaxX &&
		r.MaxX > other.MinX &&
		r.MinY < other.MaxY &&
		r.MaxY > other.MinY
}
