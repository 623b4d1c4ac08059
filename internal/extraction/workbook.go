package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	apperrors "bizdash/internal/errors"
)

// Row is one spreadsheet row as text cells.
type Row []string

// Cell returns the trimmed text at idx, or "" when the row is shorter or
// idx is negative.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[idx])
}

// Blank reports whether every cell is empty.
func (r Row) Blank() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadRows loads the rows of one sheet. An empty sheet name selects the
// first sheet. The reader is chosen by file extension.
func ReadRows(path, sheet string) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("workbook %s", path)).WithContext("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return readXLS(path, sheet)
	default:
		return readXLSX(path, sheet)
	}
}

func readXLSX(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	name := sheet
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets", nil).WithContext("path", path)
		}
		name = sheets[0]
	} else if idx, _ := f.GetSheetIndex(name); idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sheet %q", name)).WithContext("path", path)
	}

	// Raw values keep numbers unformatted; dates arrive as serials and are
	// converted by dateCell.
	grid, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet", err).
			WithContext("path", path).
			WithContext("sheet", name)
	}

	rows := make([]Row, len(grid))
	for i, cells := range grid {
		rows[i] = Row(cells)
	}
	return rows, nil
}

func readXLS(path, sheet string) ([]Row, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open legacy workbook", err).WithContext("path", path)
	}

	if workbook.GetNumberSheets() == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil).WithContext("path", path)
	}

	index := 0
	if sheet != "" {
		index = -1
		for i := 0; i < workbook.GetNumberSheets(); i++ {
			s, err := workbook.GetSheet(i)
			if err == nil && s != nil && s.GetName() == sheet {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sheet %q", sheet)).WithContext("path", path)
		}
	}

	s, err := workbook.GetSheet(index)
	if err != nil || s == nil {
		return nil, apperrors.NewParsingError("failed to read sheet", err).WithContext("path", path)
	}

	last := int(s.GetNumberRows())
	rows := make([]Row, 0, last+1)
	for i := 0; i <= last; i++ {
		row, err := s.GetRow(i)
		if err != nil || row == nil {
			rows = append(rows, nil)
			continue
		}

		var cells Row
		for _, col := range row.GetCols() {
			if col != nil {
				cells = append(cells, col.GetString())
			} else {
				cells = append(cells, "")
			}
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// dateCell converts a date cell to DD/MM/YYYY text. Text dates pass through;
// numeric cells are read as spreadsheet date serials.
func dateCell(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "/") {
		return raw
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial < 1 {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}
