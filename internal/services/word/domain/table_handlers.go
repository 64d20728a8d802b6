package domain

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/docsmith/internal/services/word/editor"
)

// defaultTableStyle applies when a table style is omitted.
const defaultTableStyle = "TableGrid"

// AddTableInput represents the MCP tool input for adding a table.
type AddTableInput struct {
	Rows     int     `json:"rows" jsonschema:"number of rows, must be positive"`
	Cols     int     `json:"cols" jsonschema:"number of columns, must be positive"`
	DataList [][]any `json:"data_list,omitempty" jsonschema:"cell values in row-major order; dimensions must match rows and cols exactly"`
	Style    *string `json:"style,omitempty" jsonschema:"named table style (defaults to TableGrid)"`
}

// TableData describes the appended table.
type TableData struct {
	Rows          int    `json:"rows" jsonschema:"number of rows"`
	Cols          int    `json:"cols" jsonschema:"number of columns"`
	Style         string `json:"style" jsonschema:"table style applied"`
	DataPopulated bool   `json:"data_populated" jsonschema:"whether cells were filled from data_list"`
}

// AddTableResult represents the MCP tool output for adding a table.
type AddTableResult struct {
	Envelope
	Data *TableData `json:"data,omitempty" jsonschema:"details of the added table"`
}

// AddTableTool defines the MCP tool schema for adding a table.
func AddTableTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_docx_table",
		Description: "Adds a table to the active Word document, optionally populated from a row-major list of cell values.",
	}
}

// AddTableHandler executes a table append request.
func AddTableHandler(ed *editor.Editor) mcp.ToolHandlerFor[AddTableInput, AddTableResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddTableInput) (*mcp.CallToolResult, AddTableResult, error) {
		_, span := startToolSpan(ctx, "add_docx_table")
		defer span.End()

		style := defaultTableStyle
		if input.Style != nil {
			style = *input.Style
		}

		info, err := ed.AddTable(input.Rows, input.Cols, coerceCellData(input.DataList), style)
		if err != nil {
			return newInvocationMeta(), AddTableResult{Envelope: errorEnvelope(span, err)}, nil
		}
		return newInvocationMeta(), AddTableResult{
			Envelope: successEnvelope(fmt.Sprintf("Table (%dx%d) added to Word document.", info.Rows, info.Cols)),
			Data: &TableData{
				Rows:          info.Rows,
				Cols:          info.Cols,
				Style:         info.Style,
				DataPopulated: info.DataPopulated,
			},
		}, nil
	}
}

// coerceCellData renders arbitrary JSON cell values as text. Numbers keep
// their shortest decimal form rather than JSON's float notation, and null
// becomes an empty cell.
func coerceCellData(data [][]any) [][]string {
	if data == nil {
		return nil
	}
	out := make([][]string, len(data))
	for r, row := range data {
		out[r] = make([]string, len(row))
		for c, v := range row {
			out[r][c] = cellText(v)
		}
	}
	return out
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
