// Package classify implements univariate classification schemes that
// partition a numeric series into classes: natural breaks (Jenks),
// quantile, equal interval, standard deviation and head/tail breaks.
// Classes are returned in ascending order; consumers that only need
// break positions read BinStart.
package classify

import (
	"errors"
	"fmt"
	"sort"
)

// Bin is one class produced by a classification scheme. The class
// covers [BinStart, BinEnd), except the last class which also includes
// its upper bound so the maximum observation is classified.
type Bin struct {
	BinStart float64
	BinEnd   float64
	Count    int
}

// ErrEmptyData is returned when there is nothing to classify.
var ErrEmptyData = errors.New("classify: empty data")

func validate(numBins int, data []float64) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if numBins < 1 {
		return fmt.Errorf("classify: number of bins must be positive, got %d", numBins)
	}

	return nil
}

func sortedCopy(data []float64) []float64 {
	s := make([]float64, len(data))
	copy(s, data)
	sort.Float64s(s)

	return s
}

// binsFromBreaks turns k+1 ascending break values into k counted
// classes.
func binsFromBreaks(breaks, data []float64) []Bin {
	bins := make([]Bin, len(breaks)-1)

	for i := range bins {
		b := Bin{BinStart: breaks[i], BinEnd: breaks[i+1]}
		last := i == len(bins)-1

		for _, v := range data {
			if v >= b.BinStart && (v < b.BinEnd || (last && v == b.BinEnd)) {
				b.Count++
			}
		}

		bins[i] = b
	}

	return bins
}
