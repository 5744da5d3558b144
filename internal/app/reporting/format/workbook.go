// internal/app/reporting/format/workbook.go
package format

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of an export. Footer, when set, is written bold
// below the rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
	Footer []any
}

// WriteWorkbook writes sheets as an .xlsx file to w. Headers are bold with
// an autofilter; column widths follow the longest of the first rows.
func WriteWorkbook(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("new sheet %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s, bold); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s Sheet, bold int) error {
	if len(s.Header) == 0 {
		return fmt.Errorf("sheet %q has no header", s.Name)
	}

	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return fmt.Errorf("sheet %q header: %w", s.Name, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(s.Header), 1)
	_ = f.SetCellStyle(s.Name, "A1", last, bold)
	_ = f.AutoFilter(s.Name, "A1:"+last, nil)

	for r, row := range s.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		row := row
		if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
			return fmt.Errorf("sheet %q row %d: %w", s.Name, r+1, err)
		}
	}

	if len(s.Footer) > 0 {
		n := len(s.Rows) + 2
		start, _ := excelize.CoordinatesToCellName(1, n)
		end, _ := excelize.CoordinatesToCellName(len(s.Footer), n)
		footer := s.Footer
		if err := f.SetSheetRow(s.Name, start, &footer); err != nil {
			return fmt.Errorf("sheet %q footer: %w", s.Name, err)
		}
		_ = f.SetCellStyle(s.Name, start, end, bold)
	}

	for c := 1; c <= len(s.Header); c++ {
		width := utf8.RuneCountInString(s.Header[c-1])
		for r := 0; r < len(s.Rows) && r < 50; r++ {
			if c-1 < len(s.Rows[r]) {
				if l := utf8.RuneCountInString(fmt.Sprint(s.Rows[r][c-1])); l > width {
					width = l
				}
			}
		}
		w := float64(width) * 1.1
		if w < 12 {
			w = 12
		}
		if w > 50 {
			w = 50
		}
		col, _ := excelize.ColumnNumberToName(c)
		_ = f.SetColWidth(s.Name, col, col, w)
	}
	return nil
}
