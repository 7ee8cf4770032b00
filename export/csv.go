package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the header and every row of t to w. Numbers use the
// shortest representation that round-trips; nil cells are empty.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}

	rec := make([]string, len(t.Columns))
	for r, row := range t.Rows {
		for i, cell := range row {
			rec[i] = formatCell(cell)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: csv row %d: %w", r, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: csv: %w", err)
	}

	return nil
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
