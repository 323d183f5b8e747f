package detector

import "math"

const (
	// SuppressionBand is the largest gap, in percentage points, between a
	// metric change and the spend change that still counts as spend-driven.
	SuppressionBand = 5.0
	// MoverFloor is the smallest CPA or CTR change that makes a row a mover.
	MoverFloor = 0.2
)

type Rules struct {
	CPAThreshold   float64
	CTRThreshold   float64
	SuppressMovers bool
}

type Classification struct {
	Suppressed bool
	Alert      bool
	Mover      bool
}

// Suppressed reports whether both CPA and CTR moved within SuppressionBand
// points of spend. The comparison is strict: a gap of exactly 5 is not
// suppressed.
func Suppressed(d DeltaResult) bool {
	return math.Abs(d.CPAChange-d.SpendChange) < SuppressionBand &&
		math.Abs(d.CTRChange-d.SpendChange) < SuppressionBand
}

func Classify(d DeltaResult, rules Rules) Classification {
	c := Classification{Suppressed: Suppressed(d)}

	if !c.Suppressed {
		c.Alert = math.Abs(d.CPAChange) >= rules.CPAThreshold ||
			math.Abs(d.CTRChange) >= rules.CTRThreshold
	}

	if !c.Suppressed || !rules.SuppressMovers {
		c.Mover = math.Abs(d.CPAChange) > MoverFloor ||
			math.Abs(d.CTRChange) > MoverFloor
	}

	return c
}
