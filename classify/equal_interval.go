package classify

import "gonum.org/v1/gonum/floats"

// EqualInterval splits the observed range into numBins classes of
// equal width.
func EqualInterval(numBins int, data []float64) ([]Bin, error) {
	if err := validate(numBins, data); err != nil {
		return nil, err
	}

	lo := floats.Min(data)
	hi := floats.Max(data)
	width := (hi - lo) / float64(numBins)

	breaks := make([]float64, numBins+1)
	for i := range breaks {
		breaks[i] = lo + float64(i)*width
	}

	// Counteract floating-point drift on the top boundary.
	breaks[numBins] = hi

	return binsFromBreaks(breaks, data), nil
}
