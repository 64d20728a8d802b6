package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/docsmith/internal/services/word/editor"
)

// DocumentResourcePayload represents the MCP resource payload for the active
// document.
type DocumentResourcePayload struct {
	Document struct {
		Loaded   bool    `json:"loaded"`
		Filename *string `json:"filename"`
	} `json:"document"`
}

// DocumentResource defines the MCP resource for the active document.
func DocumentResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "document_current",
		Title:       "Current Document",
		Description: "Readable state of the active Word document (loaded, filename)",
		MIMEType:    "application/json",
		URI:         "document://current",
	}
}

// DocumentResourceHandler returns a readable active document resource.
func DocumentResourceHandler(status func() editor.Status) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if status == nil {
			return nil, fmt.Errorf("document status function is not configured")
		}

		uri := DocumentResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != DocumentResource().URI {
			return nil, fmt.Errorf("invalid URI: expected %s, got %q", DocumentResource().URI, uri)
		}

		current := status()
		payload := DocumentResourcePayload{}
		payload.Document.Loaded = current.Loaded
		if current.Filename != "" {
			payload.Document.Filename = &current.Filename
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal document status: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
