package classify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StdDev places class breaks size standard deviations apart, walking
// out from the mean until the data range is covered. The outermost
// breaks are clamped to the observed minimum and maximum.
func StdDev(size float64, data []float64) ([]Bin, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	if size <= 0 || math.IsNaN(size) {
		return nil, fmt.Errorf("classify: standard deviation size must be positive, got %v", size)
	}

	lo := floats.Min(data)
	hi := floats.Max(data)

	sigma := stat.StdDev(data, nil)
	if sigma == 0 || math.IsNaN(sigma) {
		// Constant data, or a single observation: one degenerate class.
		return []Bin{{BinStart: lo, BinEnd: hi, Count: len(data)}}, nil
	}

	step := size * sigma

	// Break positions are computed by index rather than by repeated
	// addition: when step is below the float spacing at the data's
	// magnitude, b += step would never change b.
	start := stat.Mean(data, nil)
	if down := math.Ceil((start - lo) / step); down > 0 {
		start -= down * step
	}

	n := int(math.Ceil((hi - start) / step))
	if n < 1 {
		n = 1
	}

	breaks := make([]float64, n+1)
	for i := range breaks {
		breaks[i] = start + float64(i)*step
	}

	breaks[0] = lo
	breaks[n] = hi

	// Rounding at large magnitudes can collapse neighboring breaks;
	// keep them non-decreasing for downstream consumers.
	for i := 1; i <= n; i++ {
		if breaks[i] < breaks[i-1] {
			breaks[i] = breaks[i-1]
		}
	}

	return binsFromBreaks(breaks, data), nil
}
