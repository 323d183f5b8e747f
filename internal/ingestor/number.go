package ingestor

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrMissingValue = errors.New("missing value")
	ErrNotNumeric   = errors.New("non-numeric value")
)

var (
	numberReplacer = strings.NewReplacer("$", "", "%", "", " ", "")

	// Commas are accepted only as thousands separators: 1,234 or 12,345.67.
	groupedNumber = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d*)?$`)
)

// ParseNumber reads a metric cell as exported by ad platforms, accepting
// currency signs, percent signs and comma thousands separators. A comma in
// any other position, such as a decimal comma, is rejected. "--" counts as
// missing.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "--" {
		return 0, ErrMissingValue
	}
	s = numberReplacer.Replace(s)
	if strings.Contains(s, ",") {
		if !groupedNumber.MatchString(s) {
			return 0, ErrNotNumeric
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumeric
	}
	return v, nil
}
