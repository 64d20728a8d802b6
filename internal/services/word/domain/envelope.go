package domain

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	platformerrors "github.com/louisbranch/docsmith/internal/platform/errors"
	"github.com/louisbranch/docsmith/internal/platform/id"
)

// Envelope is the uniform response shape shared by every tool result.
type Envelope struct {
	Status  string `json:"status" jsonschema:"success or error"`
	Message string `json:"message" jsonschema:"human-readable outcome"`
}

const (
	// StatusSuccess marks a completed operation.
	StatusSuccess = "success"
	// StatusError marks a failed operation; Message carries the reason.
	StatusError = "error"
)

// ResourceUpdateNotifier signals that a resource URI changed.
type ResourceUpdateNotifier func(ctx context.Context, uri string)

var tracer = otel.Tracer("github.com/louisbranch/docsmith/internal/services/word/domain")

// startToolSpan opens one span per tool invocation.
func startToolSpan(ctx context.Context, tool string) (context.Context, trace.Span) {
	return tracer.Start(ctx, tool, trace.WithAttributes(attribute.String("mcp.tool", tool)))
}

// successEnvelope shapes a successful outcome.
func successEnvelope(message string) Envelope {
	return Envelope{Status: StatusSuccess, Message: message}
}

// errorEnvelope shapes a failed outcome and records it on the span. The
// failure stays inside the envelope: tool calls succeed at the protocol
// level even when the operation does not.
func errorEnvelope(span trace.Span, err error) Envelope {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(platformerrors.CodeOf(err)))
	return Envelope{Status: StatusError, Message: err.Error()}
}

// newInvocationMeta generates the per-call metadata attached to results.
func newInvocationMeta() *mcp.CallToolResult {
	invocationID, err := id.NewID()
	if err != nil {
		// Metadata is best-effort; the call itself proceeds.
		log.Printf("generate invocation id: %v", err)
		return nil
	}
	return &mcp.CallToolResult{
		Meta: map[string]any{
			"invocation_id": invocationID,
		},
	}
}

// NotifyResourceUpdates invokes notify for each URI when a notifier is set.
func NotifyResourceUpdates(ctx context.Context, notify ResourceUpdateNotifier, uris ...string) {
	if notify == nil {
		return
	}
	for _, uri := range uris {
		notify(ctx, uri)
	}
}
