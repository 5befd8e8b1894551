package classify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binner/classify"
)

func starts(bins []classify.Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.BinStart
	}

	return out
}

func totalCount(bins []classify.Bin) int {
	n := 0
	for _, b := range bins {
		n += b.Count
	}

	return n
}

func assertAscending(t *testing.T, bins []classify.Bin) {
	t.Helper()

	for i, b := range bins {
		assert.LessOrEqual(t, b.BinStart, b.BinEnd, "bin %d", i)

		if i > 0 {
			assert.Equal(t, bins[i-1].BinEnd, b.BinStart, "bins %d and %d must adjoin", i-1, i)
		}
	}
}

func TestEqualInterval(t *testing.T) {
	bins, err := classify.EqualInterval(4, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	require.Len(t, bins, 4)

	assert.Equal(t, []float64{0, 2, 4, 6}, starts(bins))
	assert.Equal(t, 8.0, bins[3].BinEnd)
	assert.Equal(t, 9, totalCount(bins))
	assertAscending(t, bins)
}

func TestEqualInterval_constantData(t *testing.T) {
	bins, err := classify.EqualInterval(3, []float64{7, 7, 7})
	require.NoError(t, err)
	require.Len(t, bins, 3)
	assert.Equal(t, 3, totalCount(bins))
}

func TestQuantile(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}

	bins, err := classify.Quantile(4, data)
	require.NoError(t, err)
	require.Len(t, bins, 4)
	assertAscending(t, bins)
	assert.Equal(t, 100, totalCount(bins))

	// Quarters of 0..99 hold roughly equal shares.
	for _, b := range bins {
		assert.InDelta(t, 25, b.Count, 1)
	}
}

func TestStdDev(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	bins, err := classify.StdDev(1, data)
	require.NoError(t, err)
	require.NotEmpty(t, bins)
	assertAscending(t, bins)

	assert.Equal(t, 2.0, bins[0].BinStart)
	assert.Equal(t, 9.0, bins[len(bins)-1].BinEnd)
	assert.Equal(t, len(data), totalCount(bins))
}

func TestStdDev_invalidSize(t *testing.T) {
	_, err := classify.StdDev(0, []float64{1, 2})
	assert.Error(t, err)

	_, err = classify.StdDev(-1, []float64{1, 2})
	assert.Error(t, err)
}

// A tightly clustered series at large magnitude makes the class width
// smaller than the float spacing there; break building must still
// terminate and cover the full range.
func TestStdDev_largeMagnitudeClusters(t *testing.T) {
	base := 1e18
	top := math.Nextafter(math.Nextafter(base, math.Inf(1)), math.Inf(1))

	data := make([]float64, 0, 100)
	for i := 0; i < 99; i++ {
		data = append(data, base)
	}

	data = append(data, top)

	bins, err := classify.StdDev(1, data)
	require.NoError(t, err)
	require.NotEmpty(t, bins)
	require.Less(t, len(bins), 100)

	assertAscending(t, bins)
	assert.Equal(t, base, bins[0].BinStart)
	assert.GreaterOrEqual(t, bins[len(bins)-1].BinEnd, top)
	assert.Equal(t, len(data), totalCount(bins))
}

func TestStdDev_constantData(t *testing.T) {
	bins, err := classify.StdDev(1, []float64{3, 3, 3})
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
}

func TestJenks_clusters(t *testing.T) {
	data := []float64{1, 2, 3, 100, 101, 102}

	bins, err := classify.Jenks(2, data)
	require.NoError(t, err)
	require.Len(t, bins, 2)

	assert.Equal(t, []float64{1, 100}, starts(bins))
	assert.Equal(t, 3, bins[0].Count)
	assert.Equal(t, 3, bins[1].Count)
}

func TestJenks_threeClusters(t *testing.T) {
	data := []float64{1, 1.5, 2, 10, 10.5, 11, 50, 50.5, 51}

	bins, err := classify.Jenks(3, data)
	require.NoError(t, err)
	require.Len(t, bins, 3)

	assert.Equal(t, []float64{1, 10, 50}, starts(bins))

	for _, b := range bins {
		assert.Equal(t, 3, b.Count)
	}
}

func TestJenks_moreBinsThanValues(t *testing.T) {
	bins, err := classify.Jenks(10, []float64{1, 2})
	require.NoError(t, err)
	assert.Len(t, bins, 2)
}

func TestHeadTail_heavyTail(t *testing.T) {
	// Mostly small values with a few large outliers.
	data := []float64{1, 1, 1, 1, 2, 2, 2, 3, 3, 40, 200}

	bins, err := classify.HeadTail(data)
	require.NoError(t, err)
	require.Greater(t, len(bins), 1)
	assertAscending(t, bins)

	assert.Equal(t, 1.0, bins[0].BinStart)
	assert.Equal(t, 200.0, bins[len(bins)-1].BinEnd)
	assert.Equal(t, len(data), totalCount(bins))

	// The top class holds a minority of the values.
	assert.Less(t, bins[len(bins)-1].Count, len(data)/2)
}

func TestHeadTail_constantData(t *testing.T) {
	bins, err := classify.HeadTail([]float64{4, 4, 4})
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
}

func TestEmptyData(t *testing.T) {
	for name, call := range map[string]func() error{
		"equal-interval": func() error { _, err := classify.EqualInterval(3, nil); return err },
		"quantile":       func() error { _, err := classify.Quantile(3, nil); return err },
		"std-dev":        func() error { _, err := classify.StdDev(1, nil); return err },
		"jenks":          func() error { _, err := classify.Jenks(3, nil); return err },
		"head-tail":      func() error { _, err := classify.HeadTail(nil); return err },
	} {
		assert.ErrorIs(t, call(), classify.ErrEmptyData, name)
	}
}

func TestInvalidNumBins(t *testing.T) {
	_, err := classify.EqualInterval(0, []float64{1})
	assert.Error(t, err)

	_, err = classify.Quantile(-1, []float64{1})
	assert.Error(t, err)

	_, err = classify.Jenks(0, []float64{1})
	assert.Error(t, err)
}
