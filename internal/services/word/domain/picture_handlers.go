package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/docsmith/internal/services/word/editor"
)

// AddPictureInput represents the MCP tool input for adding a picture.
type AddPictureInput struct {
	ImagePath  string   `json:"image_path" jsonschema:"server-local path to the image file"`
	WidthInch  *float64 `json:"width_inch,omitempty" jsonschema:"desired width in inches; aspect ratio is preserved when height is omitted"`
	HeightInch *float64 `json:"height_inch,omitempty" jsonschema:"desired height in inches; aspect ratio is preserved when width is omitted"`
}

// PictureData describes the appended picture.
type PictureData struct {
	Filename string `json:"filename" jsonschema:"base filename of the placed image"`
}

// AddPictureResult represents the MCP tool output for adding a picture.
type AddPictureResult struct {
	Envelope
	Data *PictureData `json:"data,omitempty" jsonschema:"details of the added picture"`
}

// AddPictureTool defines the MCP tool schema for adding a picture.
func AddPictureTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_docx_picture",
		Description: "Adds an inline picture from a server-local image file to the active Word document.",
	}
}

// AddPictureHandler executes a picture append request.
func AddPictureHandler(ed *editor.Editor) mcp.ToolHandlerFor[AddPictureInput, AddPictureResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddPictureInput) (*mcp.CallToolResult, AddPictureResult, error) {
		_, span := startToolSpan(ctx, "add_docx_picture")
		defer span.End()

		path := strings.TrimSpace(input.ImagePath)
		if path == "" {
			return newInvocationMeta(), AddPictureResult{
				Envelope: errorEnvelope(span, fmt.Errorf("image_path is required")),
			}, nil
		}

		name, err := ed.AddPicture(path, input.WidthInch, input.HeightInch)
		if err != nil {
			return newInvocationMeta(), AddPictureResult{Envelope: errorEnvelope(span, err)}, nil
		}
		return newInvocationMeta(), AddPictureResult{
			Envelope: successEnvelope(fmt.Sprintf("Picture %q added to Word document.", name)),
			Data:     &PictureData{Filename: name},
		}, nil
	}
}
