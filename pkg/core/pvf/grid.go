package pvf

import (
	"gorgonia.org/tensor"
)

// grid is the dense Nx x Ny x 2 array of node vectors. It is backed by a
// gorgonia tensor.Dense the same way original_source/training_model.py backs
// its grid with a numpy array (self.grid = np.zeros((nx, ny, 2))); the
// teacher's pkg/core/math/tensor/gorgonia wrapper is the idiom this adapts,
// narrowed to the one dtype (float64) the engine's §5 precision invariant
// requires.
type grid struct {
	dense  *tensor.Dense
	nx, ny int
}

func newGrid(nx, ny int) *grid {
	return &grid{
		dense: tensor.New(
			tensor.WithShape(nx, ny, 2),
			tensor.Of(tensor.Float64),
		),
		nx: nx,
		ny: ny,
	}
}

// at returns the vector stored at ind. It panics on an out-of-range index;
// callers must check inRange first (a violation here is InternalInvariant,
// not a recoverable condition).
func (g *grid) at(ind nodeIndex) Point {
	vx, err := g.dense.At(ind.I, ind.J, 0)
	if err != nil {
		panic(err)
	}
	vy, err := g.dense.At(ind.I, ind.J, 1)
	if err != nil {
		panic(err)
	}
	return Point{X: vx.(float64), Y: vy.(float64)}
}

func (g *grid) set(ind nodeIndex, v Point) {
	if err := g.dense.SetAt(v.X, ind.I, ind.J, 0); err != nil {
		panic(err)
	}
	if err := g.dense.SetAt(v.Y, ind.I, ind.J, 1); err != nil {
		panic(err)
	}
}

// visited reports whether the node has been written by updateNode at least
// once. Per §5, a node is unvisited exactly when both components equal zero,
// since updateNode never produces an exact zero from a nonzero input.
func (g *grid) visited(ind nodeIndex) bool {
	return !g.at(ind).IsZero()
}

// updateNode applies the incremental vector-averaging rule of §4.C: the
// first visit simply stores v; subsequent visits pull the stored vector
// toward v by a magnitude-weighted fraction that never fully discards
// history.
func (g *grid) updateNode(v Point, ind nodeIndex) {
	h := g.at(ind)
	if h.IsZero() {
		g.set(ind, v)
		return
	}

	lenV := v.Magnitude()
	lenH := h.Magnitude()
	alpha := lenV / (lenV + lenH)
	updated := h.Add(v.Sub(h).Scale(alpha))
	g.set(ind, updated)
}
