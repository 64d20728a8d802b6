package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/docsmith/internal/platform/errors"
	"github.com/louisbranch/docsmith/internal/services/word/editor"
)

// defaultHeadingLevel applies when a heading level is omitted.
const defaultHeadingLevel = 1

// AddParagraphInput represents the MCP tool input for adding a paragraph.
type AddParagraphInput struct {
	Text  string `json:"text" jsonschema:"text content of the paragraph"`
	Style string `json:"style,omitempty" jsonschema:"named paragraph style, e.g. Normal or BodyText"`
}

// ParagraphData describes the appended paragraph.
type ParagraphData struct {
	TextAdded    string `json:"text_added" jsonschema:"text that was appended"`
	StyleApplied string `json:"style_applied" jsonschema:"style applied to the paragraph"`
}

// AddParagraphResult represents the MCP tool output for adding a paragraph.
type AddParagraphResult struct {
	Envelope
	Data *ParagraphData `json:"data,omitempty" jsonschema:"details of the added paragraph"`
}

// AddParagraphTool defines the MCP tool schema for adding a paragraph.
func AddParagraphTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_docx_paragraph",
		Description: "Adds a paragraph to the active Word document with an optional named style.",
	}
}

// AddParagraphHandler executes a paragraph append request.
func AddParagraphHandler(ed *editor.Editor) mcp.ToolHandlerFor[AddParagraphInput, AddParagraphResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddParagraphInput) (*mcp.CallToolResult, AddParagraphResult, error) {
		_, span := startToolSpan(ctx, "add_docx_paragraph")
		defer span.End()

		info, err := ed.AddParagraph(input.Text, input.Style)
		if err != nil {
			return newInvocationMeta(), AddParagraphResult{Envelope: errorEnvelope(span, err)}, nil
		}
		return newInvocationMeta(), AddParagraphResult{
			Envelope: successEnvelope("Paragraph added to Word document."),
			Data:     &ParagraphData{TextAdded: info.Text, StyleApplied: info.Style},
		}, nil
	}
}

// AddHeadingInput represents the MCP tool input for adding a heading.
type AddHeadingInput struct {
	Text  string `json:"text" jsonschema:"heading text"`
	Level *int   `json:"level,omitempty" jsonschema:"heading level, 0 for Title and 1-9 for headings (defaults to 1)"`
}

// HeadingData describes the appended heading.
type HeadingData struct {
	TextAdded string `json:"text_added" jsonschema:"text that was appended"`
	Level     int    `json:"level" jsonschema:"heading level applied"`
}

// AddHeadingResult represents the MCP tool output for adding a heading.
type AddHeadingResult struct {
	Envelope
	Data *HeadingData `json:"data,omitempty" jsonschema:"details of the added heading"`
}

// AddHeadingTool defines the MCP tool schema for adding a heading.
func AddHeadingTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_docx_heading",
		Description: "Adds a heading to the active Word document. Level 0 is the document title; levels 1-9 map to heading styles.",
	}
}

// AddHeadingHandler executes a heading append request.
func AddHeadingHandler(ed *editor.Editor) mcp.ToolHandlerFor[AddHeadingInput, AddHeadingResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddHeadingInput) (*mcp.CallToolResult, AddHeadingResult, error) {
		_, span := startToolSpan(ctx, "add_docx_heading")
		defer span.End()

		level := defaultHeadingLevel
		if input.Level != nil {
			level = *input.Level
		}

		info, err := ed.AddHeading(input.Text, level)
		if err != nil {
			return newInvocationMeta(), AddHeadingResult{Envelope: errorEnvelope(span, err)}, nil
		}
		return newInvocationMeta(), AddHeadingResult{
			Envelope: successEnvelope("Heading added to Word document."),
			Data:     &HeadingData{TextAdded: info.Text, Level: info.Level},
		}, nil
	}
}

// TextRunInput is one styled text run inside a styled paragraph request.
type TextRunInput struct {
	Text         *string  `json:"text,omitempty" jsonschema:"run text (required)"`
	Bold         bool     `json:"bold,omitempty" jsonschema:"render the run bold"`
	Italic       bool     `json:"italic,omitempty" jsonschema:"render the run italic"`
	FontSizePt   *float64 `json:"font_size_pt,omitempty" jsonschema:"font size in points"`
	FontName     string   `json:"font_name,omitempty" jsonschema:"font family name"`
	FontColorRGB []int    `json:"font_color_rgb,omitempty" jsonschema:"RGB color triple, each component 0-255"`
}

// AddStyledParagraphInput represents the MCP tool input for a styled paragraph.
type AddStyledParagraphInput struct {
	TextRuns       []TextRunInput `json:"text_runs" jsonschema:"ordered list of styled text runs"`
	ParagraphStyle string         `json:"paragraph_style,omitempty" jsonschema:"named style for the whole paragraph"`
}

// StyledParagraphData describes the appended styled paragraph.
type StyledParagraphData struct {
	FullText string `json:"full_text" jsonschema:"concatenated text of all runs"`
}

// AddStyledParagraphResult represents the MCP tool output for a styled paragraph.
type AddStyledParagraphResult struct {
	Envelope
	Data *StyledParagraphData `json:"data,omitempty" jsonschema:"details of the added paragraph"`
}

// AddStyledParagraphTool defines the MCP tool schema for a styled paragraph.
func AddStyledParagraphTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_docx_styled_text_paragraph",
		Description: "Adds a paragraph built from multiple styled text runs (bold, italic, font size, font name, RGB color).",
	}
}

// AddStyledParagraphHandler executes a styled paragraph append request.
func AddStyledParagraphHandler(ed *editor.Editor) mcp.ToolHandlerFor[AddStyledParagraphInput, AddStyledParagraphResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddStyledParagraphInput) (*mcp.CallToolResult, AddStyledParagraphResult, error) {
		_, span := startToolSpan(ctx, "add_docx_styled_text_paragraph")
		defer span.End()

		if len(input.TextRuns) == 0 {
			return newInvocationMeta(), AddStyledParagraphResult{
				Envelope: errorEnvelope(span, errors.New(errors.CodeRunTextMissing,
					"text_runs must be a non-empty list of run objects")),
			}, nil
		}

		runs := make([]editor.TextRun, 0, len(input.TextRuns))
		for i, tr := range input.TextRuns {
			if tr.Text == nil {
				return newInvocationMeta(), AddStyledParagraphResult{
					Envelope: errorEnvelope(span, errors.New(errors.CodeRunTextMissing,
						fmt.Sprintf("text_runs[%d] is missing the required text field", i))),
				}, nil
			}
			runs = append(runs, editor.TextRun{
				Text:         *tr.Text,
				Bold:         tr.Bold,
				Italic:       tr.Italic,
				FontSizePt:   tr.FontSizePt,
				FontName:     tr.FontName,
				FontColorRGB: tr.FontColorRGB,
			})
		}

		fullText, err := ed.AddStyledParagraph(runs, input.ParagraphStyle)
		if err != nil {
			return newInvocationMeta(), AddStyledParagraphResult{Envelope: errorEnvelope(span, err)}, nil
		}
		return newInvocationMeta(), AddStyledParagraphResult{
			Envelope: successEnvelope("Styled text paragraph added to Word document."),
			Data:     &StyledParagraphData{FullText: fullText},
		}, nil
	}
}

// AddPageBreakInput represents the MCP tool input for adding a page break.
type AddPageBreakInput struct{}

// AddPageBreakResult represents the MCP tool output for adding a page break.
type AddPageBreakResult struct {
	Envelope
}

// AddPageBreakTool defines the MCP tool schema for adding a page break.
func AddPageBreakTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_docx_page_break",
		Description: "Adds a manual page break to the active Word document.",
	}
}

// AddPageBreakHandler executes a page break append request.
func AddPageBreakHandler(ed *editor.Editor) mcp.ToolHandlerFor[AddPageBreakInput, AddPageBreakResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ AddPageBreakInput) (*mcp.CallToolResult, AddPageBreakResult, error) {
		_, span := startToolSpan(ctx, "add_docx_page_break")
		defer span.End()

		if err := ed.AddPageBreak(); err != nil {
			return newInvocationMeta(), AddPageBreakResult{Envelope: errorEnvelope(span, err)}, nil
		}
		return newInvocationMeta(), AddPageBreakResult{
			Envelope: successEnvelope("Page break added."),
		}, nil
	}
}
