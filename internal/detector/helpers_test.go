package detector

import (
	"github.com/ricardonunez-io/adpulse/internal/ingestor"
)

var testColumns = []string{"Campaign", "Ad Group", "CPA", "CTR", "Cost", "Conversions", "Impressions"}

// makeTable builds a table from rows given in testColumns order.
func makeTable(name string, rows ...[]string) ingestor.Table {
	return makeTableWith(name, testColumns, rows...)
}

func makeTableWith(name string, columns []string, rows ...[]string) ingestor.Table {
	t := ingestor.Table{Name: name, Columns: columns}
	for i, r := range rows {
		values := make(map[string]string, len(columns))
		for j, col := range columns {
			if j < len(r) {
				values[col] = r[j]
			}
		}
		t.Rows = append(t.Rows, ingestor.Row{Line: i + 2, Values: values})
	}
	return t
}
