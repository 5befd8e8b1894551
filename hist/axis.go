package hist

import (
	"errors"
	"sort"
)

// Construction errors.
var (
	ErrNoEdges   = errors.New("hist: at least one bin edge is required")
	ErrEdgeOrder = errors.New("hist: bin edges must be non-decreasing")
)

// VariableAxis partitions the real line into len(edges)+1 intervals:
// one underflow interval below the first edge, len(edges)-1 interior
// intervals, and one overflow interval at and above the last edge.
// The partition is total, exhaustive and mutually exclusive for every
// finite value.
type VariableAxis struct {
	edges []float64
}

// NewVariableAxis validates and copies the edge list. Equal adjacent
// edges are accepted and yield zero-width interior bins; decreasing
// edges are rejected.
func NewVariableAxis(edges []float64) (*VariableAxis, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	for i := 1; i < len(edges); i++ {
		if edges[i] < edges[i-1] {
			return nil, ErrEdgeOrder
		}
	}

	a := &VariableAxis{edges: make([]float64, len(edges))}
	copy(a.edges, edges)

	return a, nil
}

// Edges returns a copy of the axis edges.
func (a *VariableAxis) Edges() []float64 {
	edges := make([]float64, len(a.edges))
	copy(edges, a.edges)

	return edges
}

// NumIntervals counts all intervals including underflow and overflow.
func (a *VariableAxis) NumIntervals() int {
	return len(a.edges) + 1
}

// Index maps a value to its interval index: 0 is underflow, 1..k-1 are
// interior bins in ascending edge order, k is overflow (k = number of
// edges). With duplicate edges the value lands in the last bin whose
// lower edge equals it, so zero-width bins stay empty.
func (a *VariableAxis) Index(v float64) int {
	k := len(a.edges)

	if v < a.edges[0] {
		return 0
	}

	if v >= a.edges[k-1] {
		return k
	}

	return sort.Search(k, func(i int) bool { return a.edges[i] > v })
}

// Interval materializes the descriptor for an interval index.
func (a *VariableAxis) Interval(i int) Interval {
	k := len(a.edges)

	switch {
	case i == 0:
		return Interval{Kind: Underflow, End: a.edges[0]}
	case i == k:
		return Interval{Kind: Overflow, Start: a.edges[k-1]}
	default:
		return Interval{Kind: Interior, Start: a.edges[i-1], End: a.edges[i]}
	}
}
