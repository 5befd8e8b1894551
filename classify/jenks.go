package classify

import "math"

// Jenks computes natural breaks: class limits that minimize the summed
// in-class variance, after Fisher's exact dynamic programming
// formulation. numBins is capped at the number of observations.
func Jenks(numBins int, data []float64) ([]Bin, error) {
	if err := validate(numBins, data); err != nil {
		return nil, err
	}

	sorted := sortedCopy(data)

	n := len(sorted)
	if numBins > n {
		numBins = n
	}

	// lowerLimits[l][j] is the 1-based index of the first element of
	// the top class when the first l elements are split into j classes;
	// variances[l][j] is the matching summed in-class variance.
	lowerLimits := make([][]int, n+1)
	variances := make([][]float64, n+1)

	for i := range lowerLimits {
		lowerLimits[i] = make([]int, numBins+1)
		variances[i] = make([]float64, numBins+1)
	}

	for j := 1; j <= numBins; j++ {
		lowerLimits[1][j] = 1

		for l := 2; l <= n; l++ {
			variances[l][j] = math.Inf(1)
		}
	}

	var v float64

	for l := 2; l <= n; l++ {
		sum, sumSquares, w := 0.0, 0.0, 0.0

		for m := 1; m <= l; m++ {
			lower := l - m + 1
			val := sorted[lower-1]

			sum += val
			sumSquares += val * val
			w++

			v = sumSquares - sum*sum/w

			if lower == 1 {
				continue
			}

			for j := 2; j <= numBins; j++ {
				if variances[l][j] >= v+variances[lower-1][j-1] {
					lowerLimits[l][j] = lower
					variances[l][j] = v + variances[lower-1][j-1]
				}
			}
		}

		lowerLimits[l][1] = 1
		variances[l][1] = v
	}

	breaks := make([]float64, numBins+1)
	breaks[0] = sorted[0]
	breaks[numBins] = sorted[n-1]

	l := n
	for j := numBins; j >= 2; j-- {
		lower := lowerLimits[l][j]
		breaks[j-1] = sorted[lower-1]
		l = lower - 1
	}

	return binsFromBreaks(breaks, data), nil
}
