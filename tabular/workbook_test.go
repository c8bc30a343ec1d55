package tabular

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/google/go-cmp/cmp"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}, order []string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadWorkbookFirstSheetOnly(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Results": {
			{"metric", "value"},
			{"accuracy", 0.91},
			{"recall", 0.85},
		},
		"Scratch": {
			{"ignored"},
		},
	}, []string{"Results", "Scratch"})

	table, sheets, err := ReadWorkbook(path, 0)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if diff := cmp.Diff([]string{"Results", "Scratch"}, sheets); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"metric", "value"}, table.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if table.RowCount() != 2 {
		t.Errorf("rows = %d, want 2 (first sheet only)", table.RowCount())
	}
}

func TestReadWorkbookBoundedSample(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Data": {
			{"v"}, {1}, {2}, {3}, {4},
		},
	}, []string{"Data"})

	table, _, err := ReadWorkbook(path, 2)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if table.RowCount() != 2 {
		t.Errorf("rows = %d, want bounded sample of 2", table.RowCount())
	}
}
