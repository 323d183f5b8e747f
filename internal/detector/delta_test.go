package detector

import (
	"math"
	"testing"

	"github.com/ricardonunez-io/adpulse/internal/ingestor"
)

func TestPercentChange_Basic(t *testing.T) {
	if got := PercentChange(12, 10); math.Abs(got-20) > 1e-9 {
		t.Errorf("PercentChange(12, 10): got %v, want 20", got)
	}
	if got := PercentChange(5, 10); math.Abs(got+50) > 1e-9 {
		t.Errorf("PercentChange(5, 10): got %v, want -50", got)
	}
}

func TestPercentChange_ZeroPrevious(t *testing.T) {
	for _, curr := range []float64{0, 1, -3, 1e9} {
		got := PercentChange(curr, 0)
		if got != 0 {
			t.Errorf("PercentChange(%v, 0): got %v, want 0", curr, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("PercentChange(%v, 0) must be finite", curr)
		}
	}
}

func TestDeltas(t *testing.T) {
	d := Deltas(
		MetricRecord{CPA: 12, CTR: 2, Cost: 0},
		MetricRecord{CPA: 10, CTR: 0, Cost: 0},
	)
	if math.Abs(d.CPAChange-20) > 1e-9 {
		t.Errorf("CPAChange: got %v, want 20", d.CPAChange)
	}
	if d.CTRChange != 0 || d.SpendChange != 0 {
		t.Errorf("zero previous: got ctr %v spend %v, want 0 0", d.CTRChange, d.SpendChange)
	}
}

func TestParseMetrics_Skips(t *testing.T) {
	row := ingestor.Row{Line: 7, Values: map[string]string{"CPA": "10", "CTR": "abc", "Cost": "5"}}
	_, skip := parseMetrics("current.csv", "Shoes", row)
	if skip == nil {
		t.Fatal("parseMetrics: expected skip for non-numeric CTR")
	}
	if skip.Column != ColumnCTR || skip.Reason != ReasonNotNumeric || skip.Line != 7 {
		t.Errorf("skip: got %+v", *skip)
	}

	row = ingestor.Row{Line: 8, Values: map[string]string{"CPA": "10", "CTR": "1"}}
	_, skip = parseMetrics("current.csv", "Shoes", row)
	if skip == nil || skip.Column != ColumnCost || skip.Reason != ReasonMissingValue {
		t.Errorf("missing Cost: got %+v", skip)
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		20.000000000000004: 20,
		-3.14159:           -3.14,
		1.005e-9:           0,
		12.346:             12.35,
		0.125:              0.13,
	}
	for in, want := range cases {
		if got := round2(in); got != want {
			t.Errorf("round2(%v): got %v, want %v", in, got, want)
		}
	}
}
