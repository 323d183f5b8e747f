package detector

import (
	"fmt"
	"strings"
	"testing"
)

var keywordColumns = []string{"Keyword", "Impressions", "Conversions"}

func keywordTable(rows ...[]string) KeywordInsight {
	insight, _ := ExtractKeywords(makeTableWith("current.csv", keywordColumns, rows...))
	return insight
}

func TestExtractKeywords_NoKeywordColumn(t *testing.T) {
	insight, skipped := ExtractKeywords(makeTable("current.csv", []string{"Brand", "Shoes", "1"}))
	if !insight.Empty() {
		t.Errorf("no Keyword column: got %+v, want empty", insight)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped: got %d, want 0", len(skipped))
	}
	if insight.Text() != "" {
		t.Errorf("Text: got %q, want empty", insight.Text())
	}
}

func TestExtractKeywords_ImpressionFloor(t *testing.T) {
	insight := keywordTable(
		[]string{"low volume", "99", "50"},
		[]string{"edge", "100", "1"},
		[]string{"high", "5000", "10"},
	)
	for _, kw := range append(insight.Top, insight.Bottom...) {
		if kw == "low volume" {
			t.Error("keyword under 100 impressions must be excluded")
		}
	}
	if insight.Qualifying != 2 {
		t.Errorf("Qualifying: got %d, want 2", insight.Qualifying)
	}
	if len(insight.Top) != 2 || insight.Top[0] != "high" || insight.Top[1] != "edge" {
		t.Errorf("Top: got %v, want [high edge]", insight.Top)
	}
	if len(insight.Bottom) != 0 {
		t.Errorf("Bottom: got %v, want empty", insight.Bottom)
	}
}

func TestExtractKeywords_NoOverlapWithFewRows(t *testing.T) {
	var rows [][]string
	for i := 0; i < 7; i++ {
		rows = append(rows, []string{fmt.Sprintf("kw%d", i), "1000", fmt.Sprintf("%d", 70-i*10)})
	}
	insight := keywordTable(rows...)

	if strings.Join(insight.Top, ",") != "kw0,kw1,kw2,kw3,kw4" {
		t.Errorf("Top: got %v", insight.Top)
	}
	if strings.Join(insight.Bottom, ",") != "kw5,kw6" {
		t.Errorf("Bottom: got %v, want [kw5 kw6]", insight.Bottom)
	}
}

func TestExtractKeywords_TwelveRows(t *testing.T) {
	var rows [][]string
	for i := 0; i < 12; i++ {
		rows = append(rows, []string{fmt.Sprintf("kw%02d", i), "500", fmt.Sprintf("%d", i)})
	}
	insight := keywordTable(rows...)

	if strings.Join(insight.Top, ",") != "kw11,kw10,kw09,kw08,kw07" {
		t.Errorf("Top: got %v", insight.Top)
	}
	if strings.Join(insight.Bottom, ",") != "kw04,kw03,kw02,kw01,kw00" {
		t.Errorf("Bottom: got %v", insight.Bottom)
	}
}

func TestExtractKeywords_SkipsBadRows(t *testing.T) {
	insight, skipped := ExtractKeywords(makeTableWith("current.csv", keywordColumns,
		[]string{"good", "200", "3"},
		[]string{"bad impressions", "lots", "3"},
		[]string{"bad conversions", "200", ""},
		[]string{"", "200", "3"},
	))
	if len(insight.Top) != 1 || insight.Top[0] != "good" {
		t.Errorf("Top: got %v, want [good]", insight.Top)
	}
	if len(skipped) != 3 {
		t.Fatalf("skipped: got %d, want 3", len(skipped))
	}
	if skipped[0].Column != ColumnImpressions || skipped[0].Reason != ReasonNotNumeric {
		t.Errorf("skipped[0]: got %+v", skipped[0])
	}
	if skipped[1].Column != ColumnConversions || skipped[1].Reason != ReasonMissingValue {
		t.Errorf("skipped[1]: got %+v", skipped[1])
	}
	if skipped[2].Column != ColumnKeyword {
		t.Errorf("skipped[2]: got %+v", skipped[2])
	}
}

func TestExtractKeywords_Themes(t *testing.T) {
	insight := keywordTable(
		[]string{"[running shoes]", "300", "4"},
		[]string{`"running shoes"`, "300", "2"},
		[]string{"leather boots", "300", "1"},
	)
	if len(insight.Themes) != 1 {
		t.Fatalf("Themes: got %d, want 1", len(insight.Themes))
	}
	if insight.Themes[0].Template != "running shoes" || insight.Themes[0].Count != 2 {
		t.Errorf("Theme: got %+v", insight.Themes[0])
	}
}

func TestKeywordInsight_Text(t *testing.T) {
	insight := KeywordInsight{Top: []string{"a", "b"}, Bottom: []string{"c"}}
	want := "Top performing keywords:\na\nb\nLowest performing keywords:\nc"
	if got := insight.Text(); got != want {
		t.Errorf("Text:\ngot  %q\nwant %q", got, want)
	}
}
