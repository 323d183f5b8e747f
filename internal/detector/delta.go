package detector

import (
	"errors"
	"math"

	"github.com/ricardonunez-io/adpulse/internal/ingestor"
)

// MetricRecord holds the parsed metrics of one row.
type MetricRecord struct {
	Line     int
	Key      string
	Campaign string
	CPA      float64
	CTR      float64
	Cost     float64
}

// DeltaResult holds signed percentage changes from the previous period.
type DeltaResult struct {
	CPAChange   float64
	CTRChange   float64
	SpendChange float64
}

// PercentChange returns the change from prev to curr in percent. A zero
// previous value yields 0, never NaN or Inf, so an entity that was at zero
// last period reads as unchanged.
func PercentChange(curr, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return ((curr - prev) / prev) * 100
}

func Deltas(current, previous MetricRecord) DeltaResult {
	return DeltaResult{
		CPAChange:   PercentChange(current.CPA, previous.CPA),
		CTRChange:   PercentChange(current.CTR, previous.CTR),
		SpendChange: PercentChange(current.Cost, previous.Cost),
	}
}

// Skip reasons recorded against rows left out of the results.
const (
	ReasonMissingValue = "missing value"
	ReasonNotNumeric   = "non-numeric value"
)

// SkippedRow records a row that could not be evaluated.
type SkippedRow struct {
	Dataset string `json:"dataset"`
	Line    int    `json:"line"`
	Key     string `json:"key"`
	Column  string `json:"column"`
	Reason  string `json:"reason"`
}

func parseMetrics(dataset, key string, r ingestor.Row) (MetricRecord, *SkippedRow) {
	rec := MetricRecord{
		Line:     r.Line,
		Key:      key,
		Campaign: r.Get(ColumnCampaign),
	}

	fields := []struct {
		column string
		dst    *float64
	}{
		{ColumnCPA, &rec.CPA},
		{ColumnCTR, &rec.CTR},
		{ColumnCost, &rec.Cost},
	}
	for _, f := range fields {
		v, err := ingestor.ParseNumber(r.Get(f.column))
		if err != nil {
			return MetricRecord{}, &SkippedRow{
				Dataset: dataset,
				Line:    r.Line,
				Key:     key,
				Column:  f.column,
				Reason:  skipReason(err),
			}
		}
		*f.dst = v
	}

	return rec, nil
}

func skipReason(err error) string {
	if errors.Is(err, ingestor.ErrMissingValue) {
		return ReasonMissingValue
	}
	return ReasonNotNumeric
}

// round2 rounds exact halves away from zero, not to even.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
