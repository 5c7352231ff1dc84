package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"pricelist-service/internal/pricelist/model"
)

func readXLSX(r io.Reader, headerRow int) ([]model.RawRow, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	h := pickHeader(rows, headerRow)
	return sheetToRows(rows, h, headerRow), nil
}
