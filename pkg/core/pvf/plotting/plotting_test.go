package plotting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/pvf/pkg/core/pvf"
	"github.com/itohio/pvf/pkg/core/pvf/plotting"
)

func TestRender_RejectsNonPositiveScale(t *testing.T) {
	snap := plotting.Snapshot{
		Nx: 2, Ny: 2, Spacing: 1,
		At: func(i, j int) pvf.Point { return pvf.Point{} },
	}
	_, err := plotting.Render(snap, 0)
	assert.Error(t, err)
}

func TestRender_ProducesNonEmptyImage(t *testing.T) {
	visited := map[[2]int]pvf.Point{
		{0, 0}: {X: 0.3, Y: 0.1},
		{1, 1}: {X: -0.2, Y: 0.4},
	}
	snap := plotting.Snapshot{
		Nx: 3, Ny: 3, Spacing: 1,
		At: func(i, j int) pvf.Point {
			return visited[[2]int{i, j}]
		},
	}

	img, err := plotting.Render(snap, 20, []pvf.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	defer img.Close()

	assert.False(t, img.Empty())
}
