package pvf

import "math"

// Point is a 2D coordinate, or a displacement vector, in grid space.
type Point struct {
	X, Y float64
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale returns p scaled by c.
func (p Point) Scale(c float64) Point { return Point{p.X * c, p.Y * c} }

// Magnitude returns the Euclidean norm of p.
func (p Point) Magnitude() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 { return p.Sub(o).Magnitude() }

// IsZero reports whether both components are exactly zero, the sentinel the
// engine uses throughout to mean "unvisited".
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// nodeIndex identifies a lattice node by its (i, j) grid indices.
type nodeIndex struct {
	I, J int
}

// Trident is the three lattice nodes forming the smallest equilateral
// triangle of the grid that contains a query point.
type Trident struct {
	Left, Right, Center nodeIndex
}
