package keyword

import (
	"regexp"
	"strings"
)

var (
	matchTypeMarkup = regexp.MustCompile(`[\[\]"+]`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// Normalize strips Google Ads match-type markup ([exact], "phrase",
// +modifier) and folds case and spacing, so the same search term entered
// under different match types compares equal.
func Normalize(kw string) string {
	kw = matchTypeMarkup.ReplaceAllString(kw, " ")
	kw = whitespace.ReplaceAllString(kw, " ")
	return strings.ToLower(strings.TrimSpace(kw))
}
