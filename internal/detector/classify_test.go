package detector

import (
	"math"
	"testing"
)

func TestSuppressed_BothWithinBand(t *testing.T) {
	d := DeltaResult{CPAChange: 5, CTRChange: 1, SpendChange: 5}
	if !Suppressed(d) {
		t.Error("CPA and CTR within 5 points of spend should be suppressed")
	}
}

func TestSuppressed_BoundaryIsNotSuppressed(t *testing.T) {
	cases := []DeltaResult{
		{CPAChange: 25, CTRChange: 20, SpendChange: 20},
		{CPAChange: 20, CTRChange: 15, SpendChange: 20},
		{CPAChange: 5, CTRChange: 0, SpendChange: 5},
	}
	for _, d := range cases {
		if Suppressed(d) {
			t.Errorf("gap of exactly 5 should not suppress: %+v", d)
		}
	}
}

func TestClassify_SuppressedNeverAlerts(t *testing.T) {
	d := DeltaResult{CPAChange: 42, CTRChange: 40, SpendChange: 41}
	for _, th := range []float64{0, 5, 15, 40, 100} {
		c := Classify(d, Rules{CPAThreshold: th, CTRThreshold: th})
		if c.Alert {
			t.Errorf("threshold %v: suppressed row produced an alert", th)
		}
		if !c.Suppressed {
			t.Errorf("threshold %v: row should be suppressed", th)
		}
	}
}

func TestClassify_AlertIffThresholdReached(t *testing.T) {
	rules := Rules{CPAThreshold: 15, CTRThreshold: 10}
	cases := []struct {
		d    DeltaResult
		want bool
	}{
		{DeltaResult{CPAChange: 15, CTRChange: 0, SpendChange: 0}, true},
		{DeltaResult{CPAChange: -15, CTRChange: 0, SpendChange: 0}, true},
		{DeltaResult{CPAChange: 14.99, CTRChange: 9.99, SpendChange: 30}, false},
		{DeltaResult{CPAChange: 0, CTRChange: -10, SpendChange: 20}, true},
		{DeltaResult{CPAChange: 8, CTRChange: 8, SpendChange: -20}, false},
	}
	for _, c := range cases {
		got := Classify(c.d, rules)
		if got.Suppressed {
			t.Fatalf("case %+v should not be suppressed", c.d)
		}
		if got.Alert != c.want {
			t.Errorf("Classify(%+v).Alert: got %v, want %v", c.d, got.Alert, c.want)
		}
		wantAlert := math.Abs(c.d.CPAChange) >= rules.CPAThreshold || math.Abs(c.d.CTRChange) >= rules.CTRThreshold
		if got.Alert != wantAlert {
			t.Errorf("Classify(%+v).Alert disagrees with threshold rule", c.d)
		}
	}
}

func TestClassify_MoverFloor(t *testing.T) {
	rules := Rules{CPAThreshold: 15, CTRThreshold: 15}
	if c := Classify(DeltaResult{CPAChange: 0.2, CTRChange: -0.2, SpendChange: 30}, rules); c.Mover {
		t.Error("changes of exactly 0.2 should not be movers")
	}
	if c := Classify(DeltaResult{CPAChange: 0.21, CTRChange: 0, SpendChange: 30}, rules); !c.Mover {
		t.Error("CPA change above 0.2 should be a mover")
	}
	if c := Classify(DeltaResult{CPAChange: 0, CTRChange: -0.3, SpendChange: 30}, rules); !c.Mover {
		t.Error("CTR change above 0.2 in magnitude should be a mover")
	}
}

func TestClassify_SuppressedRowStillMoves(t *testing.T) {
	d := DeltaResult{CPAChange: 3, CTRChange: 1, SpendChange: 2}

	c := Classify(d, Rules{CPAThreshold: 5, CTRThreshold: 5})
	if !c.Suppressed || c.Alert {
		t.Fatalf("expected suppressed without alert, got %+v", c)
	}
	if !c.Mover {
		t.Error("suppressed row should still be a mover by default")
	}

	c = Classify(d, Rules{CPAThreshold: 5, CTRThreshold: 5, SuppressMovers: true})
	if c.Mover {
		t.Error("SuppressMovers should drop suppressed rows from movers")
	}
}
