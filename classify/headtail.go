package classify

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// headShareLimit stops the head/tail recursion once the head stops
// being a clear minority of the remaining values.
const headShareLimit = 0.4

// HeadTail implements head/tail breaks for heavy-tailed distributions:
// split at the mean, keep the values above it, and repeat while that
// head holds a minority share. The number of classes follows from the
// data rather than a caller-supplied count.
func HeadTail(data []float64) ([]Bin, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	breaks := []float64{floats.Min(data)}
	part := data

	for {
		m := stat.Mean(part, nil)

		var head []float64

		for _, v := range part {
			if v > m {
				head = append(head, v)
			}
		}

		if len(head) == 0 || len(head) == len(part) {
			break
		}

		breaks = append(breaks, m)

		if float64(len(head))/float64(len(part)) >= headShareLimit {
			break
		}

		part = head
	}

	breaks = append(breaks, floats.Max(data))

	return binsFromBreaks(breaks, data), nil
}
