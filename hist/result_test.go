package hist_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binner/hist"
)

func TestAssemble_nullBucket(t *testing.T) {
	h, err := hist.New([]float64{5})
	require.NoError(t, err)

	h.FillAll([]float64{5, 5, 5})

	res := hist.Assemble(hist.Metadata{TotalRows: 5, NumericValues: 3, NullValues: 2}, h, true, 2)

	require.Len(t, res.Bins, 3)

	nullBin := res.Bins[2]
	assert.Equal(t, "null", nullBin.Label)
	assert.Equal(t, 2, nullBin.Count)
	assert.Nil(t, nullBin.From)
	assert.Nil(t, nullBin.To)
	assert.Nil(t, nullBin.Min)
	assert.Nil(t, nullBin.Max)
}

func TestAssemble_noNullBucketWhenNotRequested(t *testing.T) {
	h, err := hist.New([]float64{5})
	require.NoError(t, err)

	h.Fill(6)

	res := hist.Assemble(hist.Metadata{}, h, false, 2)
	require.Len(t, res.Bins, 2)
}

func TestAssemble_noNullBucketWhenNoNulls(t *testing.T) {
	h, err := hist.New([]float64{5})
	require.NoError(t, err)

	res := hist.Assemble(hist.Metadata{}, h, true, 0)
	require.Len(t, res.Bins, 2)
}

func TestResult_jsonShape(t *testing.T) {
	h, err := hist.New([]float64{1, 5})
	require.NoError(t, err)

	h.FillAll([]float64{1, 2, 3, 9})

	algorithm := "EqualInterval"
	numBins := 2
	meta := hist.Metadata{
		File:          "data.parquet",
		Column:        "score",
		Algorithm:     &algorithm,
		NumBins:       &numBins,
		TotalRows:     4,
		NumericValues: 4,
		BinEdges:      []float64{1, 5},
	}

	out, err := json.Marshal(hist.Assemble(meta, h, false, 0))
	require.NoError(t, err)

	var decoded struct {
		Metadata map[string]interface{}   `json:"metadata"`
		Bins     []map[string]interface{} `json:"bins"`
	}

	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "data.parquet", decoded.Metadata["file"])
	assert.Equal(t, "EqualInterval", decoded.Metadata["algorithm"])
	assert.Nil(t, decoded.Metadata["std_dev_size"])
	assert.Equal(t, []interface{}{1.0, 5.0}, decoded.Metadata["bin_edges"])

	require.Len(t, decoded.Bins, 3)
	assert.Nil(t, decoded.Bins[0]["from"], "underflow lower bound is open")
	assert.Equal(t, 1.0, decoded.Bins[1]["from"])
	assert.Equal(t, 5.0, decoded.Bins[1]["to"])
	assert.Nil(t, decoded.Bins[2]["to"], "overflow upper bound is open")
}
