package detector

import (
	"math"
	"sort"
)

type AlertRecord struct {
	Key         string  `json:"key"`
	Campaign    string  `json:"campaign,omitempty"`
	CPAChange   float64 `json:"cpaChange"`
	CTRChange   float64 `json:"ctrChange"`
	SpendChange float64 `json:"spendChange"`
}

type MoverRecord struct {
	Key       string  `json:"key"`
	CPAChange float64 `json:"cpaChange"`
	CTRChange float64 `json:"ctrChange"`
}

// RankMovers orders movers by absolute CPA change, largest first, keeping
// input order among ties, and returns at most n of them.
func RankMovers(movers []MoverRecord, n int) []MoverRecord {
	ranked := make([]MoverRecord, len(movers))
	copy(ranked, movers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].CPAChange) > math.Abs(ranked[j].CPAChange)
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
