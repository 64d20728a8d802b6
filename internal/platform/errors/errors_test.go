package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeNoActiveDocument, "no document loaded")
	if err.Error() != "no document loaded" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeDocumentNotFound, "document 'a.docx' not found")
	if !stderrors.Is(err, New(CodeDocumentNotFound, "")) {
		t.Fatal("expected match by code")
	}
	if stderrors.Is(err, New(CodeImageNotFound, "")) {
		t.Fatal("expected no match for different code")
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeDocumentSaveFailed, "save failed", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in error chain")
	}
}

func TestWithMetadata(t *testing.T) {
	err := WithMetadata(CodeTableDataMismatch, "bad dimensions", map[string]string{
		"rows": "2",
	})
	if err.Metadata["rows"] != "2" {
		t.Fatalf("expected metadata rows=2, got %v", err.Metadata)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeStyleUnknown, "x")); got != CodeStyleUnknown {
		t.Fatalf("expected STYLE_UNKNOWN, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("expected UNKNOWN for plain error, got %s", got)
	}
}
