package pvf

import "errors"

// Sentinel errors, grouped by the taxonomy a caller needs to branch on:
// configuration mistakes, bad input trajectories, and internal invariants.
// CoverageFailure is deliberately not an error — AvTraj reports it by
// returning ok=false.
var (
	// ErrInvalidSpacing is returned by New when node spacing is not positive.
	ErrInvalidSpacing = errors.New("pvf: node spacing must be positive")

	// ErrExtentsNotSet is returned by UpdateGrid when it is called before
	// SetExtents.
	ErrExtentsNotSet = errors.New("pvf: grid extents not set")

	// ErrInvalidExtents is returned by SetExtents when either component of
	// the upper corner is not positive.
	ErrInvalidExtents = errors.New("pvf: extents must be positive")

	// ErrEmptyTrajectory is returned when UpdateGrid receives a trajectory
	// with zero points.
	ErrEmptyTrajectory = errors.New("pvf: trajectory is empty")

	// ErrShortTrajectory is returned when a trajectory has fewer than two
	// points, since a single point carries no segment to learn from.
	ErrShortTrajectory = errors.New("pvf: trajectory has fewer than two points")

	// ErrZeroLengthSegment is returned when two consecutive trajectory
	// points coincide.
	ErrZeroLengthSegment = errors.New("pvf: trajectory contains a zero-length segment")

	// ErrPointOutOfExtents is returned when a trajectory point lies on or
	// outside the grid's coordinate frame boundary.
	ErrPointOutOfExtents = errors.New("pvf: point lies outside grid extents")

	// ErrInternalInvariant marks a state the engine's own algorithm should
	// never reach; it is not meant to be recovered from by the caller.
	ErrInternalInvariant = errors.New("pvf: internal invariant violated")
)
