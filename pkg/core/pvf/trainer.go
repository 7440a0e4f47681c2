package pvf

import (
	"fmt"
	"math"
)

// Model is a trained path vector field: a triangular grid of 2D vectors plus
// the running statistics (§3 "Trainer state") that the synthesizer uses to
// decide when a grown trajectory has run long enough.
type Model struct {
	spacing float64

	nx, ny      int
	upperCorner Point
	grid        *grid

	n         int     // N: trajectories ingested
	avgLen    float64 // L̄
	maxCoord  int     // Cmax
	minSeg    float64 // σmin
	hasExtent bool

	// StrictComplementaryWeights switches the k=2 synthesis branch from the
	// source's own-distance weighting to the k=3-style complementary
	// weighting. Default false preserves the documented source behavior
	// (see design note on the k=2 weighting).
	StrictComplementaryWeights bool
}

// New constructs a Model with the given node spacing. SetExtents must be
// called before training or synthesis.
func New(nodeSpacing float64) (*Model, error) {
	if nodeSpacing <= 0 {
		return nil, ErrInvalidSpacing
	}
	return &Model{spacing: nodeSpacing}, nil
}

// SetExtents allocates the grid for the rectangle [0, upperCorner.X] x
// [0, upperCorner.Y]. It must be called exactly once, before any training.
func (m *Model) SetExtents(upperCorner Point) error {
	if upperCorner.X <= 0 || upperCorner.Y <= 0 {
		return ErrInvalidExtents
	}

	nx := int(math.Ceil(2*upperCorner.X/m.spacing)) + 1
	ny := int(math.Ceil(upperCorner.Y/(m.spacing*yFact))) + 1

	m.nx, m.ny = nx, ny
	m.upperCorner = upperCorner
	m.grid = newGrid(nx, ny)
	m.minSeg = m.spacing
	m.hasExtent = true
	return nil
}

// Extents returns the upper-right Cartesian corner passed to SetExtents.
func (m *Model) Extents() Point { return m.upperCorner }

// UpdateGrid ingests one trajectory, already in grid-space coordinates, per
// §4.C. It rejects the trajectory with ErrPointOutOfExtents, before any state
// changes, if a point lies on or outside the extents.
func (m *Model) UpdateGrid(traj []Point) error {
	if !m.hasExtent {
		return ErrExtentsNotSet
	}
	if len(traj) == 0 {
		return ErrEmptyTrajectory
	}
	if len(traj) < 2 {
		return ErrShortTrajectory
	}

	if err := m.validateWithinExtents(traj); err != nil {
		return err
	}

	sigma, count, length := trajMetrics(traj)

	// Aggregate counters update first; zero-length-segment rejection comes
	// after, matching the source's literal order in update_grid (see the
	// design note on aggregate-update ordering). sigma_min is always a min
	// against whatever it already holds, including the node-spacing
	// bootstrap set by SetExtents; a zero sigma (a trajectory about to be
	// rejected for a zero-length segment) never tightens it.
	m.n++
	m.avgLen = m.avgLen*float64(m.n-1)/float64(m.n) + length/float64(m.n)
	if sigma > 0 && sigma < m.minSeg {
		m.minSeg = sigma
	}
	if count > m.maxCoord {
		m.maxCoord = count
	}

	for i := 0; i < len(traj)-1; i++ {
		if traj[i+1].Distance(traj[i]) == 0 {
			return fmt.Errorf("%w: segment %d", ErrZeroLengthSegment, i)
		}
	}

	for i := 0; i < len(traj)-1; i++ {
		pk := traj[i]
		pk1 := traj[i+1]

		t := findTrident(pk, m.spacing)
		if !inRange(t, m.nx, m.ny) {
			break
		}

		d := pk1.Distance(pk)

		if d < m.spacing {
			m.applyStep(pk1, t)
			continue
		}

		nInc := int(math.Floor(d / m.spacing))
		dir := pk1.Sub(pk).Scale(1 / d)
		for j := 0; j < nInc; j++ {
			q := pk.Add(dir.Scale(float64(j) * m.spacing))
			qt := findTrident(q, m.spacing)
			if !inRange(qt, m.nx, m.ny) {
				break
			}
			m.applyStep(pk1, qt)
		}
	}

	_, _ = m.AvTraj(traj[0])
	return nil
}

// validateWithinExtents checks that every point of traj lies strictly
// inside (0, Ex) x (0, Ey), per §3 invariant 5. It ports the original's
// check_extents point/axis validation, which this engine otherwise left
// unwired.
func (m *Model) validateWithinExtents(traj []Point) error {
	for i, p := range traj {
		if p.X <= 0 || p.Y <= 0 || p.X >= m.upperCorner.X || p.Y >= m.upperCorner.Y {
			return fmt.Errorf("%w: point %d %v", ErrPointOutOfExtents, i, p)
		}
	}
	return nil
}

// applyStep submits v_n = target - coord_from_ind(n) to update_node for each
// of a trident's three nodes.
func (m *Model) applyStep(target Point, t Trident) {
	for _, n := range [3]nodeIndex{t.Left, t.Right, t.Center} {
		v := target.Sub(coordFromInd(n, m.spacing))
		m.grid.updateNode(v, n)
	}
}

// Spacing returns the model's node spacing.
func (m *Model) Spacing() float64 { return m.spacing }

// Extent returns the grid's allocated node counts along each axis.
func (m *Model) Extent() (nx, ny int) { return m.nx, m.ny }

// NodeVector returns the vector stored at lattice node (i, j); the zero
// vector means unvisited. It is exposed read-only for diagnostic rendering.
func (m *Model) NodeVector(i, j int) Point {
	return m.grid.at(nodeIndex{I: i, J: j})
}

// TrajectoryCount returns N, the number of trajectories ingested so far.
func (m *Model) TrajectoryCount() int { return m.n }

// AveragePathLength returns L-bar, the running mean of ingested trajectory
// path lengths.
func (m *Model) AveragePathLength() float64 { return m.avgLen }

// MaxCoordCount returns Cmax, the largest point count observed across
// ingested trajectories.
func (m *Model) MaxCoordCount() int { return m.maxCoord }

// ShortestSegment returns sigma_min, the shortest segment length observed
// across all ingested trajectories (bootstrapped to the node spacing).
func (m *Model) ShortestSegment() float64 { return m.minSeg }
