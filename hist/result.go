package hist

// Bin is one row of the histogram result. Open-ended and absent bounds
// are nil; Min and Max are nil exactly when Count is zero.
type Bin struct {
	Label string   `json:"bin_label"`
	From  *float64 `json:"from"`
	To    *float64 `json:"to"`
	Count int      `json:"count"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
}

// Metadata describes how the histogram was derived. Algorithm, NumBins
// and StdDevSize are nil when custom edges were supplied.
type Metadata struct {
	File          string    `json:"file"`
	Column        string    `json:"column"`
	Algorithm     *string   `json:"algorithm"`
	NumBins       *int      `json:"num_bins"`
	StdDevSize    *float64  `json:"std_dev_size"`
	TotalRows     int       `json:"total_rows"`
	NumericValues int       `json:"numeric_values"`
	NullValues    int       `json:"null_values"`
	BinEdges      []float64 `json:"bin_edges"`
}

// Result is the final histogram value.
type Result struct {
	Metadata Metadata `json:"metadata"`
	Bins     []Bin    `json:"bins"`
}

// NullBucket is the synthetic bucket for missing observations. It
// carries only a count; edges and extremes stay absent.
func NullBucket(count int) Bin {
	return Bin{Label: NullToken, Count: count}
}

// Assemble merges metadata with the histogram's bins, appending the
// null bucket last when requested and at least one missing value
// exists. Nulls are otherwise dropped from the bins and reported only
// through the metadata counts.
func Assemble(meta Metadata, h *Histogram, includeNull bool, nullCount int) *Result {
	bins := h.Bins()

	if includeNull && nullCount > 0 {
		bins = append(bins, NullBucket(nullCount))
	}

	return &Result{Metadata: meta, Bins: bins}
}
