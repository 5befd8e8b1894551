package hist

import "fmt"

// IntervalKind tags the three interval shapes a variable axis produces.
type IntervalKind int

const (
	// Underflow is the open-ended interval below the first edge.
	Underflow IntervalKind = iota
	// Interior is a half-open interval [Start, End) between two edges.
	Interior
	// Overflow is the open-ended interval at and above the last edge.
	Overflow
)

// Interval is one cell of a variable axis. Exactly three shapes exist:
// underflow carries only End, overflow carries only Start, interior
// carries both with Start < End (equal bounds give a zero-width bin
// that can never match a value).
type Interval struct {
	Kind  IntervalKind
	Start float64
	End   float64
}

// Contains reports whether v falls in the interval. Bounds follow the
// half-open convention, so every finite value belongs to exactly one
// interval of an axis.
func (iv Interval) Contains(v float64) bool {
	switch iv.Kind {
	case Underflow:
		return v < iv.End
	case Overflow:
		return v >= iv.Start
	default:
		return v >= iv.Start && v < iv.End
	}
}

// Label renders the interval for humans. Bounds are fixed to three
// decimals; From/To keep full precision for machine consumers.
func (iv Interval) Label() string {
	switch iv.Kind {
	case Underflow:
		return fmt.Sprintf("< %.3f", iv.End)
	case Overflow:
		return fmt.Sprintf(">= %.3f", iv.Start)
	default:
		return fmt.Sprintf("[%.3f, %.3f)", iv.Start, iv.End)
	}
}

// From returns the lower bound, nil when the interval is open below.
func (iv Interval) From() *float64 {
	if iv.Kind == Underflow {
		return nil
	}

	start := iv.Start

	return &start
}

// To returns the upper bound, nil when the interval is open above.
func (iv Interval) To() *float64 {
	if iv.Kind == Overflow {
		return nil
	}

	end := iv.End

	return &end
}
