package schema

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// MissingColumnError reports required columns absent from a dataset.
type MissingColumnError struct {
	Dataset string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s is missing required column(s): %s", e.Dataset, strings.Join(e.Columns, ", "))
}

// Require returns a *MissingColumnError naming every column of required
// that s lacks. Required columns present but not numeric are only logged,
// since their bad rows are skipped later.
func Require(s Schema, required []string, numeric []string) error {
	var missing []string
	for _, name := range required {
		if !s.HasField(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		log.Debug().
			Str("dataset", s.Dataset).
			Strs("missing", missing).
			Strs("available", s.FieldNames()).
			Msg("Required columns not found")
		return &MissingColumnError{Dataset: s.Dataset, Columns: missing}
	}

	for _, name := range numeric {
		f, ok := s.Field(name)
		if ok && f.Type == FieldTypeString {
			log.Warn().
				Str("dataset", s.Dataset).
				Str("column", name).
				Strs("examples", f.Examples).
				Msg("Column holds non-numeric values, affected rows will be skipped")
		}
	}
	return nil
}
