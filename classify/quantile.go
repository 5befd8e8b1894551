package classify

import "gonum.org/v1/gonum/stat"

// Quantile places class breaks at the empirical i/numBins quantiles,
// so classes hold roughly equal numbers of observations.
func Quantile(numBins int, data []float64) ([]Bin, error) {
	if err := validate(numBins, data); err != nil {
		return nil, err
	}

	sorted := sortedCopy(data)

	breaks := make([]float64, numBins+1)
	for i := range breaks {
		breaks[i] = stat.Quantile(float64(i)/float64(numBins), stat.Empirical, sorted, nil)
	}

	return binsFromBreaks(breaks, data), nil
}
