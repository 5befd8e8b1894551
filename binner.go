// Package binner builds labeled histograms from numeric Parquet
// columns using classification-based or caller-supplied bin edges.
package binner

import (
	"fmt"
	"strings"

	"binner/classify"
	"binner/dataset"
	"binner/hist"
)

// Algorithm selects a classification scheme for automatic bin
// calculation. The string value is what metadata reports.
type Algorithm string

// Available algorithms.
const (
	Jenks             Algorithm = "Jenks"
	Quantile          Algorithm = "Quantile"
	EqualInterval     Algorithm = "EqualInterval"
	StandardDeviation Algorithm = "StandardDeviation"
	HeadTail          Algorithm = "HeadTail"
)

// ParseAlgorithm maps a CLI selector to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "jenks":
		return Jenks, nil
	case "quantile":
		return Quantile, nil
	case "equal-interval", "equalinterval":
		return EqualInterval, nil
	case "standard-deviation", "standarddeviation":
		return StandardDeviation, nil
	case "head-tail", "headtail":
		return HeadTail, nil
	default:
		return "", fmt.Errorf("binner: unknown algorithm %q", s)
	}
}

// Config is the full description of one binning run.
type Config struct {
	// File is the path of the Parquet source.
	File string

	// Column is the numeric column to bin.
	Column string

	// Algorithm drives automatic edge calculation. Ignored when
	// CustomBins is set.
	Algorithm Algorithm

	// NumBins is the target class count for algorithms that take one.
	NumBins int

	// StdDevSize is the multiplier for StandardDeviation.
	StdDevSize float64

	// CustomBins holds raw edge tokens. When non-empty it takes
	// precedence over Algorithm: no classification runs and metadata
	// reports no algorithm.
	CustomBins []string
}

// Run executes the pipeline: extract the column, resolve bin edges,
// fill the histogram and assemble the result. It is a pure function of
// the config; writing the result anywhere is the caller's concern.
func Run(cfg Config) (*hist.Result, error) {
	if cfg.Column == "" {
		return nil, ErrColumnRequired
	}

	if len(cfg.CustomBins) == 0 && cfg.Algorithm == "" {
		return nil, ErrConfiguration
	}

	col, err := dataset.ReadNumericColumn(cfg.File, cfg.Column)
	if err != nil {
		return nil, err
	}

	if len(col.Values) == 0 {
		return nil, fmt.Errorf("%w in column %q", ErrInsufficientData, cfg.Column)
	}

	meta := hist.Metadata{
		File:          cfg.File,
		Column:        cfg.Column,
		TotalRows:     col.TotalRows,
		NumericValues: len(col.Values),
		NullValues:    col.NullCount(),
	}

	var (
		edges       []float64
		includeNull bool
	)

	if len(cfg.CustomBins) > 0 {
		edges, includeNull, err = hist.ResolveCustomEdges(cfg.CustomBins)
		if err != nil {
			return nil, err
		}
	} else {
		starts, err := classifyBreaks(cfg, col.Values)
		if err != nil {
			return nil, err
		}

		edges, err = hist.EdgesFromBreaks(starts, col.Values)
		if err != nil {
			return nil, err
		}

		name := string(cfg.Algorithm)
		meta.Algorithm = &name

		numBins := cfg.NumBins
		meta.NumBins = &numBins

		if cfg.Algorithm == StandardDeviation {
			size := cfg.StdDevSize
			meta.StdDevSize = &size
		}
	}

	meta.BinEdges = edges

	h, err := hist.New(edges)
	if err != nil {
		return nil, err
	}

	h.FillAll(col.Values)

	return hist.Assemble(meta, h, includeNull, col.NullCount()), nil
}

func classifyBreaks(cfg Config, values []float64) ([]float64, error) {
	var (
		bins []classify.Bin
		err  error
	)

	switch cfg.Algorithm {
	case Jenks:
		bins, err = classify.Jenks(cfg.NumBins, values)
	case Quantile:
		bins, err = classify.Quantile(cfg.NumBins, values)
	case EqualInterval:
		bins, err = classify.EqualInterval(cfg.NumBins, values)
	case StandardDeviation:
		bins, err = classify.StdDev(cfg.StdDevSize, values)
	case HeadTail:
		bins, err = classify.HeadTail(values)
	default:
		return nil, fmt.Errorf("binner: unknown algorithm %q", cfg.Algorithm)
	}

	if err != nil {
		return nil, err
	}

	starts := make([]float64, len(bins))
	for i, b := range bins {
		starts[i] = b.BinStart
	}

	return starts, nil
}
