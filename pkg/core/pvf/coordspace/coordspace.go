// Package coordspace converts trajectories between task space (the
// caller's own Cartesian frame, which may include negative coordinates) and
// grid space (the engine's frame, whose lower-left corner is always the
// origin). It ports original_source/pvf_fun.py's convert_traj_ts2gs and
// shift_traj, the task-space<->grid-space collaborator spec.md names but
// leaves external to the core engine.
package coordspace

import (
	"math"

	"github.com/itohio/pvf/pkg/core/pvf"
)

// padding is the number of extra node spacings added around a trajectory's
// bounding box when extents are derived automatically, matching the
// original's padding = 3 constant.
const padding = 3

// yFact scales a node spacing to the height of the equilateral triangles
// that tile the lattice, mirroring pvf's own constant.
var yFact = math.Sqrt(3) / 2

// Shift translates every point of traj by delta.
func Shift(traj []pvf.Point, delta pvf.Point) []pvf.Point {
	out := make([]pvf.Point, len(traj))
	for i, p := range traj {
		out[i] = p.Add(delta)
	}
	return out
}

// AutoExtents computes grid-space extents and the task-space-to-grid-space
// shift vector from a trajectory's bounding box, padded on every side by
// padding node spacings along x and padding row heights (spacing*yFact)
// along y, porting convert_traj_ts2gs's automatic-extents
// branch (the explicit-extents branch is the caller's business: pass a
// shift you already trust to ToGridSpace/ToTaskSpace directly).
func AutoExtents(traj []pvf.Point, spacing float64) (extents pvf.Point, shift pvf.Point) {
	if len(traj) == 0 {
		return pvf.Point{}, pvf.Point{}
	}

	minX, maxX := traj[0].X, traj[0].X
	minY, maxY := traj[0].Y, traj[0].Y
	for _, p := range traj {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	extents = pvf.Point{
		X: maxX - minX + 2*padding*spacing,
		Y: maxY - minY + 2*padding*spacing*yFact,
	}
	shift = pvf.Point{
		X: minX - padding*spacing,
		Y: minY - padding*spacing*yFact,
	}
	return extents, shift
}

// ToGridSpace translates a task-space trajectory into grid space by
// subtracting shift from every point.
func ToGridSpace(traj []pvf.Point, shift pvf.Point) []pvf.Point {
	return Shift(traj, pvf.Point{X: -shift.X, Y: -shift.Y})
}

// ToTaskSpace is the inverse of ToGridSpace.
func ToTaskSpace(traj []pvf.Point, shift pvf.Point) []pvf.Point {
	return Shift(traj, shift)
}
