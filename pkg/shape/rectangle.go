package shape

// Rectangle is an axis-aligned rectangle described by its side lengths.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle returns a rectangle with the given side lengths.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns the surface area of the rectangle.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the total length of the rectangle's sides.
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}
