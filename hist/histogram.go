// Package hist implements a fixed-edge histogram over a variable axis,
// with per-interval counts and extremes and a JSON-shaped result.
package hist

import (
	"fmt"
	"strings"
)

// Histogram counts observations per interval of a variable axis and
// tracks each interval's minimum and maximum as values arrive. A single
// pass over the data produces statistics identical to re-scanning the
// observations with each interval's membership predicate.
type Histogram struct {
	axis  *VariableAxis
	accs  []accumulator
	count int
}

type accumulator struct {
	Count int
	Min   float64
	Max   float64
}

// New builds an empty histogram over the given edges.
func New(edges []float64) (*Histogram, error) {
	axis, err := NewVariableAxis(edges)
	if err != nil {
		return nil, err
	}

	return &Histogram{
		axis: axis,
		accs: make([]accumulator, axis.NumIntervals()),
	}, nil
}

// Axis exposes the underlying axis.
func (h *Histogram) Axis() *VariableAxis {
	return h.axis
}

// Count returns the number of observations filled so far.
func (h *Histogram) Count() int {
	return h.count
}

// Fill classifies one observation into exactly one interval.
func (h *Histogram) Fill(v float64) {
	acc := &h.accs[h.axis.Index(v)]

	if acc.Count == 0 || v < acc.Min {
		acc.Min = v
	}

	if acc.Count == 0 || v > acc.Max {
		acc.Max = v
	}

	acc.Count++
	h.count++
}

// FillAll classifies every observation in order.
func (h *Histogram) FillAll(values []float64) {
	for _, v := range values {
		h.Fill(v)
	}
}

// Bins assembles the result records in axis order: underflow first,
// interior bins ascending, overflow last. Every structural interval is
// emitted, zero counts included, so bins stay positionally aligned
// with the edge list.
func (h *Histogram) Bins() []Bin {
	bins := make([]Bin, 0, h.axis.NumIntervals())

	for i := 0; i < h.axis.NumIntervals(); i++ {
		iv := h.axis.Interval(i)
		acc := h.accs[i]

		b := Bin{
			Label: iv.Label(),
			From:  iv.From(),
			To:    iv.To(),
			Count: acc.Count,
		}

		if acc.Count > 0 {
			mn, mx := acc.Min, acc.Max
			b.Min = &mn
			b.Max = &mx
		}

		bins = append(bins, b)
	}

	return bins
}

// String renders the intervals with counts and share of total.
func (h *Histogram) String() string {
	bins := h.Bins()

	lLen := 0

	for _, b := range bins {
		if len(b.Label) > lLen {
			lLen = len(b.Label)
		}
	}

	cLen := printfLen("%d", h.count)

	var res strings.Builder

	fmt.Fprintf(&res, "%-*s %*s total%% (total count: %d)\n", lLen, "bin", cLen, "cnt", h.count)

	for _, b := range bins {
		percent := 0.0
		if h.count > 0 {
			percent = float64(100*b.Count) / float64(h.count)
		}

		fmt.Fprintf(&res, "%-*s %*d %5.2f%%", lLen, b.Label, cLen, b.Count, percent)

		if dots := strings.Repeat(".", int(percent)); len(dots) > 0 {
			fmt.Fprint(&res, " ", dots)
		}

		fmt.Fprintln(&res)
	}

	return res.String()
}

func printfLen(format string, val interface{}) int {
	s := fmt.Sprintf(format, val)

	return len(s)
}
