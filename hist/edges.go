package hist

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// NullToken is the custom-edge token requesting a bucket for missing values.
const NullToken = "null"

// ErrNoObservations is returned when a histogram is requested over an
// empty observation set: without a maximum there is no edge to anchor.
var ErrNoObservations = errors.New("hist: no observations to bin")

// ParseError reports a custom edge token that is neither numeric nor
// the null sentinel.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid bin value %q: use numeric values or %q", e.Token, NullToken)
}

// ResolveCustomEdges parses caller-supplied edge tokens. Non-sentinel
// tokens must be finite numbers; the result is sorted ascending with
// duplicates kept. The second return is true when the null sentinel
// was present.
func ResolveCustomEdges(tokens []string) ([]float64, bool, error) {
	edges := make([]float64, 0, len(tokens))
	includeNull := false

	for _, tok := range tokens {
		t := strings.TrimSpace(tok)

		if strings.EqualFold(t, NullToken) {
			includeNull = true

			continue
		}

		v, err := strconv.ParseFloat(t, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false, &ParseError{Token: tok}
		}

		edges = append(edges, v)
	}

	sort.Float64s(edges)

	return edges, includeNull, nil
}

// EdgesFromBreaks completes a classification's bin-start values into a
// full edge list by appending the smallest representable increment
// above the maximum observation. The maximum therefore always lands in
// the last interior bin instead of overflow.
func EdgesFromBreaks(starts, observations []float64) ([]float64, error) {
	if len(observations) == 0 {
		return nil, ErrNoObservations
	}

	edges := make([]float64, 0, len(starts)+1)
	edges = append(edges, starts...)
	edges = append(edges, math.Nextafter(floats.Max(observations), math.Inf(1)))

	return edges, nil
}
