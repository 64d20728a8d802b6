package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/unidoc/unioffice/document"

	"github.com/louisbranch/docsmith/internal/platform/errors"
)

// Editor edits one Word document at a time.
//
// Every session owns its own Editor; a mutex serializes mutations so two
// clients sharing a server cannot race the document handle.
type Editor struct {
	mu         sync.Mutex
	doc        *document.Document
	filename   string
	storageDir string
}

// Status describes the active document for read-only callers.
type Status struct {
	Loaded   bool
	Filename string
}

// New creates an editor that resolves relative filenames under storageDir.
func New(storageDir string) *Editor {
	return &Editor{storageDir: storageDir}
}

// StorageDir returns the directory relative filenames resolve under.
func (e *Editor) StorageDir() string {
	return e.storageDir
}

// Create replaces the active document with a new empty one and records the
// resolved filename for later saves. It returns the resolved path.
func (e *Editor) Create(filename string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.doc = document.New()
	e.filename = e.resolve(filename)
	return e.filename, nil
}

// Load opens an existing document from disk and makes it active.
func (e *Editor) Load(filename string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	path := e.resolve(filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.WithMetadata(errors.CodeDocumentNotFound,
				fmt.Sprintf("word document %q not found", path),
				map[string]string{"path": path})
		}
		return "", errors.Wrap(errors.CodeDocumentOpenFailed,
			fmt.Sprintf("stat word document %q", path), err)
	}

	doc, err := document.Open(path)
	if err != nil {
		return "", errors.Wrap(errors.CodeDocumentOpenFailed,
			fmt.Sprintf("open word document %q", path), err)
	}
	e.doc = doc
	e.filename = path
	return e.filename, nil
}

// Save writes the active document to disk. A non-empty filename becomes the
// new current filename; otherwise the current one is used. Intermediate
// directories are created as needed. It returns the path written.
func (e *Editor) Save(filename string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireDocument(); err != nil {
		return "", err
	}
	if filename != "" {
		e.filename = e.resolve(filename)
	}
	if e.filename == "" {
		return "", errors.New(errors.CodeSaveTargetMissing,
			"filename not specified for saving word document")
	}

	if dir := filepath.Dir(e.filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrap(errors.CodeDocumentSaveFailed,
				fmt.Sprintf("create directory %q", dir), err)
		}
	}
	if err := e.doc.SaveToFile(e.filename); err != nil {
		return "", errors.Wrap(errors.CodeDocumentSaveFailed,
			fmt.Sprintf("save word document %q", e.filename), err)
	}
	return e.filename, nil
}

// CurrentStatus reports whether a document is active and its filename.
func (e *Editor) CurrentStatus() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{Loaded: e.doc != nil, Filename: e.filename}
}

// resolve joins relative filenames with the storage directory. Absolute
// paths bypass it.
func (e *Editor) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(e.storageDir, filename)
}

// requireDocument guards content operations; callers must hold e.mu.
func (e *Editor) requireDocument() error {
	if e.doc == nil {
		return errors.New(errors.CodeNoActiveDocument,
			"no document loaded; create or load a document first")
	}
	return nil
}
