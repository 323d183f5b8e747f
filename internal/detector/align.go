package detector

import (
	"strings"

	"github.com/ricardonunez-io/adpulse/internal/ingestor"
	"github.com/ricardonunez-io/adpulse/internal/schema"
)

const keySeparator = "\x1f"

// PairedRecord joins a current-period row to a previous-period row with an
// equal grouping key.
type PairedRecord struct {
	Key      string
	Current  ingestor.Row
	Previous ingestor.Row
}

// Align inner-joins current and previous on the key columns. Rows whose key
// appears in only one period are dropped. Duplicate keys pair every current
// row with every previous row sharing the key, in current-then-previous
// file order.
func Align(current, previous ingestor.Table, keys []string) ([]PairedRecord, error) {
	for _, t := range []ingestor.Table{current, previous} {
		var missing []string
		for _, k := range keys {
			if !t.HasColumn(k) {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return nil, &schema.MissingColumnError{Dataset: t.Name, Columns: missing}
		}
	}

	byKey := make(map[string][]int, len(previous.Rows))
	for i, r := range previous.Rows {
		k := joinKey(r, keys, keySeparator)
		byKey[k] = append(byKey[k], i)
	}

	var pairs []PairedRecord
	for _, cur := range current.Rows {
		matches, ok := byKey[joinKey(cur, keys, keySeparator)]
		if !ok {
			continue
		}
		label := joinKey(cur, keys, " / ")
		for _, i := range matches {
			pairs = append(pairs, PairedRecord{
				Key:      label,
				Current:  cur,
				Previous: previous.Rows[i],
			})
		}
	}

	return pairs, nil
}

func joinKey(r ingestor.Row, keys []string, sep string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = r.Get(k)
	}
	return strings.Join(parts, sep)
}
