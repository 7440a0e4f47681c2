package pvf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, spacing float64, ex, ey float64) *Model {
	t.Helper()
	m, err := New(spacing)
	require.NoError(t, err)
	require.NoError(t, m.SetExtents(Point{X: ex, Y: ey}))
	return m
}

func TestNew_RejectsNonPositiveSpacing(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidSpacing)

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidSpacing)
}

func TestSetExtents_RejectsNonPositive(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)

	assert.ErrorIs(t, m.SetExtents(Point{X: 0, Y: 5}), ErrInvalidExtents)
	assert.ErrorIs(t, m.SetExtents(Point{X: 5, Y: -1}), ErrInvalidExtents)
}

func TestUpdateGrid_RequiresExtents(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)

	err = m.UpdateGrid([]Point{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrExtentsNotSet)
}

func TestUpdateGrid_RejectsEmptyAndShort(t *testing.T) {
	m := newTestModel(t, 1.0, 10, 10)

	assert.ErrorIs(t, m.UpdateGrid(nil), ErrEmptyTrajectory)
	assert.ErrorIs(t, m.UpdateGrid([]Point{{1, 1}}), ErrShortTrajectory)
}

// S4 / TestableProperties boundary behavior: a zero-length segment rejects
// the trajectory and leaves sigma_min untightened.
func TestUpdateGrid_ZeroLengthSegmentRejected(t *testing.T) {
	m := newTestModel(t, 1.0, 5, 5)

	err := m.UpdateGrid([]Point{{2, 2}, {2, 2}, {3, 3}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroLengthSegment))
	assert.Equal(t, 1.0, m.minSeg)
}

// Open question 3, resolved: aggregate counters update before the
// zero-length-segment rejection is detected (matches the source's literal
// update_grid ordering).
func TestUpdateGrid_ZeroLengthSegmentCountersStillAdvance(t *testing.T) {
	m := newTestModel(t, 1.0, 5, 5)

	err := m.UpdateGrid([]Point{{2, 2}, {2, 2}, {3, 3}})
	require.Error(t, err)

	assert.Equal(t, 1, m.n)
	assert.Greater(t, m.maxCoord, 0)
}

// S1: a straight-line training trajectory produces a synthesized path that
// stays near the training line and advances in x.
func TestUpdateGrid_S1_StraightLine(t *testing.T) {
	m := newTestModel(t, 1.0, 10, 10)

	traj := []Point{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}}
	require.NoError(t, m.UpdateGrid(traj))

	out, ok := m.AvTraj(Point{X: 1, Y: 1})
	require.True(t, ok)
	require.NotEmpty(t, out)

	for i, p := range out {
		assert.InDelta(t, 1.0, p.Y, 0.2, "point %d: %v", i, p)
	}
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i].X, out[i-1].X-1e-9)
	}
}

// S3: coverage failure when the start trident is entirely unvisited.
func TestUpdateGrid_S3_CoverageFailure(t *testing.T) {
	m := newTestModel(t, 1.0, 5, 5)

	require.NoError(t, m.UpdateGrid([]Point{{1, 1}, {1, 2}}))

	out, ok := m.AvTraj(Point{X: 4, Y: 4})
	assert.False(t, ok)
	assert.Nil(t, out)
}

// S5: two identical trajectories ingested consecutively leave L-bar equal to
// the single trajectory's length.
func TestUpdateGrid_S5_RepeatedTrajectoryMeanLength(t *testing.T) {
	m := newTestModel(t, 1.0, 10, 10)
	traj := []Point{{1, 1}, {2, 1}, {3, 1}}

	require.NoError(t, m.UpdateGrid(traj))
	require.NoError(t, m.UpdateGrid(traj))

	_, _, length := trajMetrics(traj)
	assert.InDelta(t, length, m.avgLen, 1e-9)
}

// sigma_min is bootstrapped to s by SetExtents and must only ever be
// tightened by min(), never overwritten outright by the first ingested
// trajectory's own sigma.
func TestUpdateGrid_MinSegBootstrapIsMinNotOverwrite(t *testing.T) {
	m := newTestModel(t, 1.0, 10, 10)

	// Single segment of length 2, longer than the s=1.0 bootstrap.
	require.NoError(t, m.UpdateGrid([]Point{{1, 1}, {1, 3}}))

	assert.Equal(t, 1.0, m.minSeg, "sigma_min must stay at the s=1.0 bootstrap, not be replaced by the larger sigma=2")
}

func TestUpdateGrid_MinSegTightensWhenShorterThanBootstrap(t *testing.T) {
	m := newTestModel(t, 1.0, 10, 10)

	require.NoError(t, m.UpdateGrid([]Point{{1, 1}, {1, 1.4}}))

	assert.InDelta(t, 0.4, m.minSeg, 1e-9)
}

func TestUpdateGrid_RejectsPointOutOfExtents(t *testing.T) {
	m := newTestModel(t, 1.0, 5, 5)

	cases := [][]Point{
		{{0, 1}, {1, 1}},  // x == 0
		{{1, 0}, {1, 1}},  // y == 0
		{{1, 1}, {5, 2}},  // x == Ex
		{{1, 1}, {2, 5}},  // y == Ey
		{{1, 1}, {6, 2}},  // x > Ex
		{{-1, 1}, {1, 1}}, // x < 0
	}

	for _, traj := range cases {
		err := m.UpdateGrid(traj)
		assert.ErrorIs(t, err, ErrPointOutOfExtents, "traj=%v", traj)
	}
}

func TestUpdateGrid_InvariantsPostTraining(t *testing.T) {
	m := newTestModel(t, 1.0, 10, 10)
	require.NoError(t, m.UpdateGrid([]Point{{1, 1}, {2, 1}, {3, 2}}))

	assert.GreaterOrEqual(t, m.n, 0)
	if m.n > 0 {
		assert.LessOrEqual(t, m.minSeg, m.spacing)
		assert.GreaterOrEqual(t, m.maxCoord, 2)
		assert.GreaterOrEqual(t, m.avgLen, m.minSeg)
	}
}
