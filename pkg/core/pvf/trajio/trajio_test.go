package trajio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/pvf/pkg/core/pvf"
	"github.com/itohio/pvf/pkg/core/pvf/trajio"
)

func TestReadTrajectory_Basic(t *testing.T) {
	in := "1 2\n3.5 -4.25\n0 0\n"
	pts, err := trajio.ReadTrajectory(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []pvf.Point{{X: 1, Y: 2}, {X: 3.5, Y: -4.25}, {X: 0, Y: 0}}, pts)
}

func TestReadTrajectory_RejectsTrailingBlankLine(t *testing.T) {
	in := "1 2\n3 4\n\n"
	_, err := trajio.ReadTrajectory(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadTrajectory_RejectsMalformedLine(t *testing.T) {
	_, err := trajio.ReadTrajectory(strings.NewReader("1 2 3\n"))
	assert.Error(t, err)

	_, err = trajio.ReadTrajectory(strings.NewReader("abc def\n"))
	assert.Error(t, err)
}

func TestWriteTrajectory_RoundTrip(t *testing.T) {
	pts := []pvf.Point{{X: 1, Y: 2}, {X: -3.5, Y: 4.25}}

	var buf bytes.Buffer
	require.NoError(t, trajio.WriteTrajectory(&buf, pts))

	got, err := trajio.ReadTrajectory(&buf)
	require.NoError(t, err)
	assert.Equal(t, pts, got)
}
