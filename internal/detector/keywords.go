package detector

import (
	"sort"
	"strings"

	"github.com/ricardonunez-io/adpulse/internal/ingestor"
	"github.com/ricardonunez-io/adpulse/internal/keyword"
)

const (
	MinKeywordImpressions = 100
	keywordListSize       = 5
	maxKeywordThemes      = 5
)

type KeywordInsight struct {
	Top        []string        `json:"top"`
	Bottom     []string        `json:"bottom"`
	Themes     []keyword.Theme `json:"themes,omitempty"`
	Qualifying int             `json:"qualifying"`
}

func (k KeywordInsight) Empty() bool {
	return len(k.Top) == 0 && len(k.Bottom) == 0
}

// Text renders the insight as a plain text block, one keyword per line.
func (k KeywordInsight) Text() string {
	if k.Empty() {
		return ""
	}
	lines := []string{"Top performing keywords:"}
	lines = append(lines, k.Top...)
	if len(k.Bottom) > 0 {
		lines = append(lines, "Lowest performing keywords:")
		lines = append(lines, k.Bottom...)
	}
	return strings.Join(lines, "\n")
}

type keywordRow struct {
	text        string
	conversions float64
}

// ExtractKeywords ranks the keyword rows of t with at least
// MinKeywordImpressions impressions by conversions. Bottom holds the
// lowest-converting rows not already listed in Top, so with fewer than ten
// qualifying rows the two lists never overlap and Bottom may be short.
// A table without a Keyword column yields an empty insight.
func ExtractKeywords(t ingestor.Table) (KeywordInsight, []SkippedRow) {
	if !t.HasColumn(ColumnKeyword) {
		return KeywordInsight{}, nil
	}

	var rows []keywordRow
	var skipped []SkippedRow
	for _, r := range t.Rows {
		text := r.Get(ColumnKeyword)
		if text == "" {
			skipped = append(skipped, SkippedRow{
				Dataset: t.Name,
				Line:    r.Line,
				Column:  ColumnKeyword,
				Reason:  ReasonMissingValue,
			})
			continue
		}

		impressions, err := ingestor.ParseNumber(r.Get(ColumnImpressions))
		if err != nil {
			skipped = append(skipped, SkippedRow{Dataset: t.Name, Line: r.Line, Key: text, Column: ColumnImpressions, Reason: skipReason(err)})
			continue
		}
		if impressions < MinKeywordImpressions {
			continue
		}

		conversions, err := ingestor.ParseNumber(r.Get(ColumnConversions))
		if err != nil {
			skipped = append(skipped, SkippedRow{Dataset: t.Name, Line: r.Line, Key: text, Column: ColumnConversions, Reason: skipReason(err)})
			continue
		}

		rows = append(rows, keywordRow{text: text, conversions: conversions})
	}

	if len(rows) == 0 {
		return KeywordInsight{}, skipped
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].conversions > rows[j].conversions
	})

	topN := min(keywordListSize, len(rows))
	insight := KeywordInsight{Qualifying: len(rows)}
	for _, r := range rows[:topN] {
		insight.Top = append(insight.Top, r.text)
	}
	for _, r := range rows[max(topN, len(rows)-keywordListSize):] {
		insight.Bottom = append(insight.Bottom, r.text)
	}

	entries := make([]keyword.Entry, len(rows))
	for i, r := range rows {
		entries[i] = keyword.Entry{Text: r.text, Conversions: r.conversions}
	}
	for _, th := range keyword.Group(entries) {
		if th.Count < 2 || len(insight.Themes) == maxKeywordThemes {
			continue
		}
		insight.Themes = append(insight.Themes, th)
	}

	return insight, skipped
}
