package modelio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/pvf/pkg/core/pvf/modelio"
)

func sampleDocument() modelio.Document {
	return modelio.Document{
		NodeSpacing: 1.0,
		GridExtents: [2]float64{10, 10},
		Grid: [][][2]float64{
			{{0, 0}, {1, 0}},
			{{0, 1}, {-1, 0.5}},
		},
		AveragePathLength: 4.5,
		GridUpdateCount:   3,
		MaxCoordCount:     5,
		ShortestSegment:   0.5,
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	formats := []modelio.Format{modelio.FormatJSON, modelio.FormatYAML, modelio.FormatProtobuf}

	for _, f := range formats {
		var buf bytes.Buffer
		doc := sampleDocument()

		require.NoError(t, modelio.Save(&buf, f, doc))

		got, err := modelio.Load(&buf, f)
		require.NoError(t, err)

		assert.Equal(t, doc.NodeSpacing, got.NodeSpacing)
		assert.Equal(t, doc.GridExtents, got.GridExtents)
		assert.Equal(t, doc.Grid, got.Grid)
		assert.Equal(t, doc.AveragePathLength, got.AveragePathLength)
		assert.Equal(t, doc.GridUpdateCount, got.GridUpdateCount)
		assert.Equal(t, doc.MaxCoordCount, got.MaxCoordCount)
		assert.Equal(t, doc.ShortestSegment, got.ShortestSegment)
		assert.NotEmpty(t, got.ModelFingerprint)
	}
}

func TestLoad_RejectsTamperedFingerprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, modelio.Save(&buf, modelio.FormatJSON, sampleDocument()))

	tampered := bytes.Replace(buf.Bytes(), []byte(`"max_coord_count": 5`), []byte(`"max_coord_count": 99`), 1)

	_, err := modelio.Load(bytes.NewReader(tampered), modelio.FormatJSON)
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, modelio.FormatJSON, modelio.DetectFormat("model.json"))
	assert.Equal(t, modelio.FormatYAML, modelio.DetectFormat("model.yaml"))
	assert.Equal(t, modelio.FormatYAML, modelio.DetectFormat("model.yml"))
	assert.Equal(t, modelio.FormatProtobuf, modelio.DetectFormat("model.pb"))
	assert.Equal(t, modelio.FormatYAML, modelio.DetectFormat("model.unknown"))
}
