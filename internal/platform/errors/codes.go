// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Document lifecycle errors
	CodeNoActiveDocument   Code = "NO_ACTIVE_DOCUMENT"
	CodeDocumentNotFound   Code = "DOCUMENT_NOT_FOUND"
	CodeDocumentOpenFailed Code = "DOCUMENT_OPEN_FAILED"
	CodeDocumentSaveFailed Code = "DOCUMENT_SAVE_FAILED"
	CodeSaveTargetMissing  Code = "SAVE_TARGET_MISSING"

	// Content validation errors
	CodeHeadingLevelInvalid Code = "HEADING_LEVEL_INVALID"
	CodeTableSizeInvalid    Code = "TABLE_SIZE_INVALID"
	CodeTableDataMismatch   Code = "TABLE_DATA_MISMATCH"
	CodeRunTextMissing      Code = "RUN_TEXT_MISSING"

	// Library resolution errors
	CodeStyleUnknown    Code = "STYLE_UNKNOWN"
	CodeImageNotFound   Code = "IMAGE_NOT_FOUND"
	CodePictureRejected Code = "PICTURE_REJECTED"
)
