package px

import "fmt"

// Point is an integer coordinate into an image's pixel grid.
// The origin is the top-left corner; X grows to the right and Y grows down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a readable representation like "(3, 7)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether the point lies inside the region.
func (p Point) In(r Region) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.Width &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Height
}

// Region is an axis-aligned rectangle used to restrict evaluation to a
// sub-area of an image. Min is the top-left corner; Width and Height are
// measured in pixels. Callers are responsible for keeping regions within
// non-negative coordinates of the target buffer.
type Region struct {
	Min           Point
	Width, Height int
}

// Rect constructs a Region from its origin and size.
func Rect(x, y, w, h int) Region {
	return Region{Min: Pt(x, y), Width: w, Height: h}
}

// String returns a readable representation like "(1, 2)+4x3".
func (r Region) String() string {
	return fmt.Sprintf("%v+%dx%d", r.Min, r.Width, r.Height)
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the largest region contained in both r and s.
// The result is empty if the two do not overlap.
func (r Region) Intersect(s Region) Region {
	x0 := max(r.Min.X, s.Min.X)
	y0 := max(r.Min.Y, s.Min.Y)
	x1 := min(r.Min.X+r.Width, s.Min.X+s.Width)
	y1 := min(r.Min.Y+r.Height, s.Min.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Region{}
	}
	return Rect(x0, y0, x1-x0, y1-y0)
}
