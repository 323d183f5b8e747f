package keyword

import "sort"

// Entry is one keyword row fed into grouping.
type Entry struct {
	Text        string
	Conversions float64
}

// Theme is a cluster of keywords sharing the same or a similar normalized form.
type Theme struct {
	Template    string   `json:"template"`
	Count       int      `json:"count"`
	Conversions float64  `json:"conversions"`
	Samples     []string `json:"samples"`
}

const DefaultSimilarityThreshold = 0.8
const maxSamplesPerTheme = 3

func Group(entries []Entry) []Theme {
	return GroupWithThreshold(entries, DefaultSimilarityThreshold)
}

// GroupWithThreshold clusters entries by normalized text, then merges
// clusters whose templates are at least threshold similar. Output is
// ordered by count, then template, and does not depend on map order.
func GroupWithThreshold(entries []Entry, threshold float64) []Theme {
	index := make(map[string]int)
	var themes []*Theme

	for _, e := range entries {
		norm := Normalize(e.Text)
		if norm == "" {
			continue
		}
		if i, ok := index[norm]; ok {
			th := themes[i]
			th.Count++
			th.Conversions += e.Conversions
			if len(th.Samples) < maxSamplesPerTheme {
				th.Samples = append(th.Samples, e.Text)
			}
			continue
		}
		index[norm] = len(themes)
		themes = append(themes, &Theme{
			Template:    norm,
			Count:       1,
			Conversions: e.Conversions,
			Samples:     []string{e.Text},
		})
	}

	merged := mergeSimilar(themes, threshold)

	result := make([]Theme, 0, len(merged))
	for _, th := range merged {
		if th.Count > 0 {
			result = append(result, *th)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Template < result[j].Template
	})

	return result
}

func mergeSimilar(themes []*Theme, threshold float64) []*Theme {
	if len(themes) <= 1 {
		return themes
	}

	for i := 0; i < len(themes); i++ {
		if themes[i].Count == 0 {
			continue
		}
		for j := i + 1; j < len(themes); j++ {
			if themes[j].Count == 0 {
				continue
			}
			if similarity(themes[i].Template, themes[j].Template) >= threshold {
				themes[i].Count += themes[j].Count
				themes[i].Conversions += themes[j].Conversions
				for _, s := range themes[j].Samples {
					if len(themes[i].Samples) < maxSamplesPerTheme {
						themes[i].Samples = append(themes[i].Samples, s)
					}
				}
				themes[j].Count = 0
				themes[j].Samples = nil
			}
		}
	}

	return themes
}

// similarity is 1 minus the edit distance over the longer keyword's length,
// both measured in runes.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(editDistance(ra, rb))/float64(longest)
}

// editDistance is the Levenshtein distance between two rune slices, kept to
// a single row of the table.
func editDistance(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i, ca := range a {
		diag := row[0]
		row[0] = i + 1
		for j, cb := range b {
			above := row[j+1]
			sub := diag
			if ca != cb {
				sub++
			}
			row[j+1] = min(sub, above+1, row[j]+1)
			diag = above
		}
	}

	return row[len(b)]
}
