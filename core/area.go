package core

// Area represents a rectangular region of cells
// Contains is half-open: X <= px < X+Width, Y <= py < Y+Height
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions, zero means empty
}

// AreaBetween returns the normalized area spanning two corners, inclusive of both
// Corners may be given in either order
func AreaBetween(a, b Point) Area {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Area{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}

// AreaAround returns the square of half-width r centered on c, inclusive of both edges
func AreaAround(c Point, r int) Area {
	return Area{X: c.X - r, Y: c.Y - r, Width: 2*r + 1, Height: 2*r + 1}
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Clamp returns p moved to the nearest cell inside the area
// An empty area returns p unchanged
func (a Area) Clamp(p Point) Point {
	if a.Width <= 0 || a.Height <= 0 {
		return p
	}
	p.X = min(max(p.X, a.X), a.X+a.Width-1)
	p.Y = min(max(p.Y, a.Y), a.Y+a.Height-1)
	return p
}
