package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pricelist-service/internal/pricelist/model"
)

// ReadRows picks a parser by file extension and returns the sheet as ordered
// rows keyed by header name. headerRow is 1-based.
func ReadRows(r io.Reader, filename string, headerRow int) ([]model.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// trimCell normalizes NBSP/NNBSP to plain spaces before trimming.
func trimCell(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s))
}

// pickHeader takes the header row and synthesizes "Column N" for blanks so
// every column stays addressable.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = trimCell(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// sheetToRows converts the cell grid below the header row into RawRows in
// column order, dropping fully empty rows.
func sheetToRows(rows [][]string, headers []string, headerRow int) []model.RawRow {
	out := make([]model.RawRow, 0, len(rows))
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		row := model.NewRawRow()
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = trimCell(rec[c])
			}
			if v != "" {
				empty = false
			}
			row.Set(headers[c], model.Text(v))
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}
