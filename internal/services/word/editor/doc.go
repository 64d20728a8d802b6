// Package editor owns the active Word document and its mutations.
//
// The editor is the document facade: it holds exactly one in-memory document
// handle plus the filename it resolves to on disk, and exposes one-shot
// operations to create, load, save, and append content. All OOXML handling
// is delegated to the unioffice library; the editor's job is path
// resolution, input validation, and typed failures.
package editor
