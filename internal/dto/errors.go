package dto

import (
	"errors"
	"fmt"
)

// Service-level error classes. Controllers never inspect error strings; the
// error handler middleware maps these to HTTP statuses.
var (
	// ErrDocumentsMissing: the interview cannot start before both the resume
	// and the job description are uploaded.
	ErrDocumentsMissing = errors.New("please upload both resume and job description before starting the interview")

	// ErrSessionNotFound: unknown, inactive or foreign-owned session id.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrDocumentNotFound: unknown or foreign-owned document id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocumentType: upload type outside {resume, job_description}.
	ErrInvalidDocumentType = errors.New("invalid document type")

	// ErrEmptyDocument: no text could be extracted from the uploaded file.
	ErrEmptyDocument = errors.New("could not extract text from PDF")
)

// UpstreamError wraps a generation-model failure. Unlike embedding failures
// there is no safe synthetic interview content, so it surfaces to the caller
// as a server-side failure.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
