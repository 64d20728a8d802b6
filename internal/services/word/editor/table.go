package editor

import (
	"fmt"

	"github.com/louisbranch/docsmith/internal/platform/errors"
)

// TableInfo summarizes an appended table.
type TableInfo struct {
	Rows          int
	Cols          int
	Style         string
	DataPopulated bool
}

// AddTable appends a rows x cols table, optionally populated from data in
// row-major order. When data is given, its dimensions must match rows and
// cols exactly.
func (e *Editor) AddTable(rows, cols int, data [][]string, style string) (TableInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return TableInfo{}, err
	}
	if rows <= 0 || cols <= 0 {
		return TableInfo{}, errors.WithMetadata(errors.CodeTableSizeInvalid,
			"number of rows and columns must be positive",
			map[string]string{"rows": fmt.Sprintf("%d", rows), "cols": fmt.Sprintf("%d", cols)})
	}
	if data != nil {
		if len(data) != rows {
			return TableInfo{}, errors.New(errors.CodeTableDataMismatch,
				fmt.Sprintf("data has %d rows, table has %d", len(data), rows))
		}
		for i, rowData := range data {
			if len(rowData) != cols {
				return TableInfo{}, errors.New(errors.CodeTableDataMismatch,
					fmt.Sprintf("data row %d has %d columns, table has %d", i, len(rowData), cols))
			}
		}
	}

	tbl := e.doc.AddTable()
	tbl.Properties().SetWidthPercent(100)
	if style != "" {
		applyTableStyle(tbl, style)
	}

	for r := 0; r < rows; r++ {
		row := tbl.AddRow()
		for c := 0; c < cols; c++ {
			cell := row.AddCell()
			// Every cell needs at least one paragraph to be valid OOXML.
			para := cell.AddParagraph()
			if data != nil {
				para.AddRun().AddText(data[r][c])
			}
		}
	}

	return TableInfo{Rows: rows, Cols: cols, Style: style, DataPopulated: data != nil}, nil
}
