package pvf

import "math"

// yFact scales a node spacing to the height of the equilateral triangles
// that tile the lattice.
var yFact = math.Sqrt(3) / 2

// coordFromInd converts lattice indices to a Cartesian grid-space position.
func coordFromInd(ind nodeIndex, s float64) Point {
	return Point{
		X: float64(ind.I) * s / 2,
		Y: float64(ind.J) * s * yFact,
	}
}

// dist2node returns the Euclidean distance from p to the node at ind.
func dist2node(p Point, ind nodeIndex, s float64) float64 {
	return p.Distance(coordFromInd(ind, s))
}

// findTrident returns the three lattice nodes forming the smallest
// equilateral triangle containing p, in the canonical order: Left (the
// lower-index vertex of the triangle's base pair), Right (the higher-index
// vertex of that pair), and Center (the third vertex, above the pair for an
// apex-up triangle, below it for an apex-down triangle).
//
// The lattice only populates nodes whose (i+j) has the row's parity; a row
// j's nodes sit at x = off(j)*s/2 + k*s for integer k, where off(j) is 0 for
// even j and 1 for odd j. Node spacing along x is s; the height of a row
// band is s*yFact. Ties (a point exactly on a lattice edge or vertex) round
// both j and, within a row band, the enclosing column down, which falls out
// of using floor plus inclusive (<=) comparisons below.
func findTrident(p Point, s float64) Trident {
	h := s * yFact

	j0 := int(math.Floor(p.Y / h))
	off0 := j0 & 1

	xLocal := p.X - float64(off0)*s/2
	k := int(math.Floor(xLocal / s))

	fx := xLocal/s - float64(k)
	fy := p.Y/h - float64(j0)

	bottomLeft := nodeIndex{I: 2*k + off0, J: j0}
	bottomRight := nodeIndex{I: 2*k + 2 + off0, J: j0}
	topCenter := nodeIndex{I: 2*k + 1 + off0, J: j0 + 1}

	if fx < 0.5 {
		if fy <= 2*fx {
			// Apex-up triangle anchored on bottom-row interval k.
			return Trident{Left: bottomLeft, Right: bottomRight, Center: topCenter}
		}
		// Apex-down triangle to the left: apex is bottomLeft, base is the
		// two top-row nodes straddling it.
		return Trident{
			Left:   nodeIndex{I: topCenter.I - 2, J: j0 + 1},
			Right:  topCenter,
			Center: bottomLeft,
		}
	}

	if fy <= 2*(1-fx) {
		return Trident{Left: bottomLeft, Right: bottomRight, Center: topCenter}
	}
	// Apex-down triangle to the right: apex is bottomRight.
	return Trident{
		Left:   topCenter,
		Right:  nodeIndex{I: topCenter.I + 2, J: j0 + 1},
		Center: bottomRight,
	}
}

// inRange reports whether every node of t indexes an allocated grid slot.
func inRange(t Trident, nx, ny int) bool {
	return indexInRange(t.Left, nx, ny) &&
		indexInRange(t.Right, nx, ny) &&
		indexInRange(t.Center, nx, ny)
}

func indexInRange(ind nodeIndex, nx, ny int) bool {
	return ind.I >= 0 && ind.I < nx && ind.J >= 0 && ind.J < ny
}
