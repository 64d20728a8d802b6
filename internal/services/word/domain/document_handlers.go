package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/docsmith/internal/services/word/editor"
)

// DefaultDocumentName is used when create is called without a filename.
const DefaultDocumentName = "new_document.docx"

// CreateDocumentInput represents the MCP tool input for creating a document.
type CreateDocumentInput struct {
	Filename string `json:"filename,omitempty" jsonschema:"filename for later saves, resolved under the storage directory when relative (defaults to new_document.docx)"`
}

// CreateDocumentResult represents the MCP tool output for creating a document.
type CreateDocumentResult struct {
	Envelope
	CurrentFilename string `json:"current_filename,omitempty" jsonschema:"resolved path of the active document"`
}

// CreateDocumentTool defines the MCP tool schema for creating a document.
func CreateDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_docx_document",
		Description: "Creates a new, blank Word document (.docx) in memory, replacing any active document.",
	}
}

// CreateDocumentHandler executes a document create request.
func CreateDocumentHandler(ed *editor.Editor, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[CreateDocumentInput, CreateDocumentResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateDocumentInput) (*mcp.CallToolResult, CreateDocumentResult, error) {
		_, span := startToolSpan(ctx, "create_docx_document")
		defer span.End()

		filename := strings.TrimSpace(input.Filename)
		if filename == "" {
			filename = DefaultDocumentName
		}

		path, err := ed.Create(filename)
		if err != nil {
			return newInvocationMeta(), CreateDocumentResult{Envelope: errorEnvelope(span, err)}, nil
		}

		NotifyResourceUpdates(ctx, notify, DocumentResource().URI)
		return newInvocationMeta(), CreateDocumentResult{
			Envelope:        successEnvelope(fmt.Sprintf("New Word document %q created and ready in memory.", path)),
			CurrentFilename: path,
		}, nil
	}
}

// LoadDocumentInput represents the MCP tool input for loading a document.
type LoadDocumentInput struct {
	Filename string `json:"filename" jsonschema:"name of the Word document to load, resolved under the storage directory when relative"`
}

// LoadDocumentResult represents the MCP tool output for loading a document.
type LoadDocumentResult struct {
	Envelope
	CurrentFilename string `json:"current_filename,omitempty" jsonschema:"resolved path of the active document"`
}

// LoadDocumentTool defines the MCP tool schema for loading a document.
func LoadDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "load_docx_document",
		Description: "Loads an existing Word document (.docx) from disk, replacing any active document.",
	}
}

// LoadDocumentHandler executes a document load request.
func LoadDocumentHandler(ed *editor.Editor, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[LoadDocumentInput, LoadDocumentResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LoadDocumentInput) (*mcp.CallToolResult, LoadDocumentResult, error) {
		_, span := startToolSpan(ctx, "load_docx_document")
		defer span.End()

		filename := strings.TrimSpace(input.Filename)
		if filename == "" {
			return newInvocationMeta(), LoadDocumentResult{
				Envelope: errorEnvelope(span, fmt.Errorf("filename is required")),
			}, nil
		}

		path, err := ed.Load(filename)
		if err != nil {
			return newInvocationMeta(), LoadDocumentResult{Envelope: errorEnvelope(span, err)}, nil
		}

		NotifyResourceUpdates(ctx, notify, DocumentResource().URI)
		return newInvocationMeta(), LoadDocumentResult{
			Envelope:        successEnvelope(fmt.Sprintf("Word document %q loaded successfully.", path)),
			CurrentFilename: path,
		}, nil
	}
}

// SaveDocumentInput represents the MCP tool input for saving a document.
type SaveDocumentInput struct {
	Filename string `json:"filename,omitempty" jsonschema:"new filename; when omitted the current filename is used"`
}

// SaveDocumentResult represents the MCP tool output for saving a document.
type SaveDocumentResult struct {
	Envelope
	SavedFilename string `json:"saved_filename,omitempty" jsonschema:"resolved path the document was written to"`
}

// SaveDocumentTool defines the MCP tool schema for saving a document.
func SaveDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "save_docx_document",
		Description: "Saves the active Word document (.docx) to disk, creating intermediate directories as needed.",
	}
}

// SaveDocumentHandler executes a document save request.
func SaveDocumentHandler(ed *editor.Editor, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[SaveDocumentInput, SaveDocumentResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SaveDocumentInput) (*mcp.CallToolResult, SaveDocumentResult, error) {
		_, span := startToolSpan(ctx, "save_docx_document")
		defer span.End()

		path, err := ed.Save(strings.TrimSpace(input.Filename))
		if err != nil {
			return newInvocationMeta(), SaveDocumentResult{Envelope: errorEnvelope(span, err)}, nil
		}

		NotifyResourceUpdates(ctx, notify, DocumentResource().URI)
		return newInvocationMeta(), SaveDocumentResult{
			Envelope:      successEnvelope(fmt.Sprintf("Word document saved to %q.", path)),
			SavedFilename: path,
		}, nil
	}
}
