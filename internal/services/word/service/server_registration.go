package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/docsmith/internal/services/word/domain"
	"github.com/louisbranch/docsmith/internal/services/word/editor"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

const (
	mcpDocumentToolsModuleName    = "document-tools"
	mcpContentToolsModuleName     = "content-tools"
	mcpMediaToolsModuleName       = "media-tools"
	mcpDocumentResourceModuleName = "document-resources"
)

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.CreateDocumentInput, domain.CreateDocumentResult](),
	newMCPToolRegistrar[domain.LoadDocumentInput, domain.LoadDocumentResult](),
	newMCPToolRegistrar[domain.SaveDocumentInput, domain.SaveDocumentResult](),
	newMCPToolRegistrar[domain.AddParagraphInput, domain.AddParagraphResult](),
	newMCPToolRegistrar[domain.AddHeadingInput, domain.AddHeadingResult](),
	newMCPToolRegistrar[domain.AddStyledParagraphInput, domain.AddStyledParagraphResult](),
	newMCPToolRegistrar[domain.AddPageBreakInput, domain.AddPageBreakResult](),
	newMCPToolRegistrar[domain.AddTableInput, domain.AddTableResult](),
	newMCPToolRegistrar[domain.AddPictureInput, domain.AddPictureResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(ed *editor.Editor, notify domain.ResourceUpdateNotifier) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpDocumentToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerDocumentTools(registrar, ed, notify)
			},
		},
		{
			name: mcpContentToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerContentTools(registrar, ed)
			},
		},
		{
			name: mcpMediaToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerMediaTools(registrar, ed)
			},
		},
		{
			name: mcpDocumentResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registerDocumentResources(registrar, ed)
				return nil
			},
		},
	}
}

// registerDocumentTools registers document lifecycle tools (create, load,
// save); each mutates which document is active, so they share the resource
// update notifier.
func registerDocumentTools(registrar mcpRegistrationTarget, ed *editor.Editor, notify domain.ResourceUpdateNotifier) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.CreateDocumentTool(), handler: domain.CreateDocumentHandler(ed, notify)},
		{tool: domain.LoadDocumentTool(), handler: domain.LoadDocumentHandler(ed, notify)},
		{tool: domain.SaveDocumentTool(), handler: domain.SaveDocumentHandler(ed, notify)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

// registerContentTools registers text content tools.
func registerContentTools(registrar mcpRegistrationTarget, ed *editor.Editor) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.AddParagraphTool(), handler: domain.AddParagraphHandler(ed)},
		{tool: domain.AddHeadingTool(), handler: domain.AddHeadingHandler(ed)},
		{tool: domain.AddStyledParagraphTool(), handler: domain.AddStyledParagraphHandler(ed)},
		{tool: domain.AddTableTool(), handler: domain.AddTableHandler(ed)},
		{tool: domain.AddPageBreakTool(), handler: domain.AddPageBreakHandler(ed)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

// registerMediaTools registers picture tools.
func registerMediaTools(registrar mcpRegistrationTarget, ed *editor.Editor) error {
	return registerTool(registrar, domain.AddPictureTool(), domain.AddPictureHandler(ed))
}

// registerDocumentResources registers the readable active document resource.
func registerDocumentResources(registrar mcpRegistrationTarget, ed *editor.Editor) {
	registrar.AddResource(domain.DocumentResource(), domain.DocumentResourceHandler(ed.CurrentStatus))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}
