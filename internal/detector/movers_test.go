package detector

import (
	"math"
	"testing"
)

func TestRankMovers_SortedAndCapped(t *testing.T) {
	movers := []MoverRecord{
		{Key: "a", CPAChange: 1},
		{Key: "b", CPAChange: -40},
		{Key: "c", CPAChange: 12},
		{Key: "d", CPAChange: 0.5},
		{Key: "e", CPAChange: 30},
		{Key: "f", CPAChange: -2},
		{Key: "g", CPAChange: 7},
	}

	ranked := RankMovers(movers, DefaultTopMovers)
	if len(ranked) != 5 {
		t.Fatalf("len: got %d, want 5", len(ranked))
	}
	wantKeys := []string{"b", "e", "c", "g", "f"}
	for i, k := range wantKeys {
		if ranked[i].Key != k {
			t.Errorf("ranked[%d]: got %s, want %s", i, ranked[i].Key, k)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if math.Abs(ranked[i].CPAChange) > math.Abs(ranked[i-1].CPAChange) {
			t.Errorf("not sorted at %d", i)
		}
	}
	if movers[0].Key != "a" {
		t.Error("RankMovers should not reorder its input")
	}
}

func TestRankMovers_StableTies(t *testing.T) {
	movers := []MoverRecord{
		{Key: "first", CPAChange: 10},
		{Key: "second", CPAChange: -10},
		{Key: "third", CPAChange: 10},
	}
	ranked := RankMovers(movers, 5)
	for i, k := range []string{"first", "second", "third"} {
		if ranked[i].Key != k {
			t.Errorf("ranked[%d]: got %s, want %s", i, ranked[i].Key, k)
		}
	}
}

func TestRankMovers_Empty(t *testing.T) {
	ranked := RankMovers(nil, 5)
	if ranked == nil || len(ranked) != 0 {
		t.Errorf("empty: got %v, want empty non-nil slice", ranked)
	}
}
