package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"

	"ftcscope/internal/model"
)

// ToCSV writes one table: a header of its columns, then each row's
// flattened cells in column order.
func ToCSV(path string, table model.Table) error {
	if len(table.Rows) == 0 {
		return errors.New("no rows")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	for _, r := range table.Rows {
		record := make([]string, len(table.Columns))
		for i, c := range table.Columns {
			record[i] = r.Get(c)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// ToNDJSON writes each row as one JSON object per line, list cells
// preserved as structured entries.
func ToNDJSON(path string, table model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	for _, r := range table.Rows {
		obj := make(map[string]any, len(table.Columns))
		for _, c := range table.Columns {
			cell := r[c]
			if cell.IsList() {
				obj[c] = cell.Entries
			} else {
				obj[c] = cell.Text
			}
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
