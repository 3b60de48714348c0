package core

// Point is an integer grid coordinate in cells
type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Sign returns the per-axis sign of p, each component in {-1, 0, 1}
func (p Point) Sign() Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
