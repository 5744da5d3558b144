package format_test

import (
	"bytes"
	"testing"

	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := format.WriteWorkbook(&buf,
		format.Sheet{
			Name:   "Views",
			Header: []string{"Page", "Views"},
			Rows:   [][]any{{"App_home", 15}, {"App_about", 7}},
			Footer: []any{"Total", 22},
		},
		format.Sheet{Name: "Other", Header: []string{"X"}},
	)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 2 || got[0] != "Views" || got[1] != "Other" {
		t.Errorf("sheets = %v", got)
	}
	cells := map[string]string{"A1": "Page", "A2": "App_home", "B3": "7", "A4": "Total", "B4": "22"}
	for cell, want := range cells {
		got, err := f.GetCellValue("Views", cell)
		if err != nil || got != want {
			t.Errorf("%s = %q (%v), want %q", cell, got, err, want)
		}
	}
}

func TestWriteWorkbookNeedsSheet(t *testing.T) {
	if err := format.WriteWorkbook(&bytes.Buffer{}); err == nil {
		t.Error("expected error for no sheets")
	}
	if err := format.WriteWorkbook(&bytes.Buffer{}, format.Sheet{Name: "x"}); err == nil {
		t.Error("expected error for sheet without header")
	}
}
