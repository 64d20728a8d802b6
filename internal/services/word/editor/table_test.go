package editor

import (
	stderrors "errors"
	"testing"

	"github.com/louisbranch/docsmith/internal/platform/errors"
)

func TestAddTableRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 2}, {2, 0}, {-1, 3}, {3, -1}} {
		ed := createTestDocument(t)
		_, err := ed.AddTable(dims[0], dims[1], nil, "")
		if !stderrors.Is(err, errors.New(errors.CodeTableSizeInvalid, "")) {
			t.Fatalf("dims %v: expected TABLE_SIZE_INVALID, got %v", dims, err)
		}
	}
}

func TestAddTableRejectsMismatchedData(t *testing.T) {
	t.Run("row count", func(t *testing.T) {
		ed := createTestDocument(t)
		_, err := ed.AddTable(2, 2, [][]string{{"1", "2", "3"}}, "")
		if !stderrors.Is(err, errors.New(errors.CodeTableDataMismatch, "")) {
			t.Fatalf("expected TABLE_DATA_MISMATCH, got %v", err)
		}
	})
	t.Run("column count", func(t *testing.T) {
		ed := createTestDocument(t)
		_, err := ed.AddTable(2, 2, [][]string{{"a", "b"}, {"c"}}, "")
		if !stderrors.Is(err, errors.New(errors.CodeTableDataMismatch, "")) {
			t.Fatalf("expected TABLE_DATA_MISMATCH, got %v", err)
		}
	})
}

func TestAddTablePopulatesCellsRowMajor(t *testing.T) {
	ed := createTestDocument(t)

	data := [][]string{{"a", "b"}, {"c", "d"}}
	info, err := ed.AddTable(2, 2, data, "TableGrid")
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	if info.Rows != 2 || info.Cols != 2 {
		t.Fatalf("expected 2x2 info, got %dx%d", info.Rows, info.Cols)
	}
	if !info.DataPopulated {
		t.Fatal("expected data populated")
	}

	tables := ed.doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	rows := tables[0].Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for r, row := range rows {
		cells := row.Cells()
		if len(cells) != 2 {
			t.Fatalf("row %d: expected 2 cells, got %d", r, len(cells))
		}
		for c, cell := range cells {
			var text string
			for _, para := range cell.Paragraphs() {
				for _, run := range para.Runs() {
					text += run.Text()
				}
			}
			if text != data[r][c] {
				t.Errorf("cell (%d,%d): expected %q, got %q", r, c, data[r][c], text)
			}
		}
	}
}

func TestAddTableStyleReference(t *testing.T) {
	ed := createTestDocument(t)

	if _, err := ed.AddTable(1, 1, nil, "TableGrid"); err != nil {
		t.Fatalf("add table: %v", err)
	}
	tbl := ed.doc.Tables()[0]
	tblPr := tbl.Properties().X()
	if tblPr.TblStyle == nil || tblPr.TblStyle.ValAttr != "TableGrid" {
		t.Fatal("expected TableGrid style reference on the table")
	}
}

func TestAddTableWithoutDataCreatesEmptyCells(t *testing.T) {
	ed := createTestDocument(t)

	info, err := ed.AddTable(2, 3, nil, "")
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	if info.DataPopulated {
		t.Fatal("expected data_populated false")
	}
	rows := ed.doc.Tables()[0].Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if got := len(row.Cells()); got != 3 {
			t.Fatalf("expected 3 cells per row, got %d", got)
		}
	}
}
