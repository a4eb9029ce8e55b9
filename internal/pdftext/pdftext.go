package pdftext

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ExtractionError means the document bytes could not be read as a PDF.
// There is no fallback for it: with no text, neither extraction tier can run.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("pdf text extraction failed: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Result holds the extracted text layer of a document.
type Result struct {
	Text     string // all pages concatenated in page order, "\n" separated
	Pages    int
	Method   string // "pdf-text"
	Duration time.Duration
	Warnings []string
}

// TextExtractor is stage 1: document bytes -> text. The parsing core depends
// only on this contract, not on the backing PDF library.
type TextExtractor interface {
	Extract(ctx context.Context, r io.ReaderAt, size int64) (Result, error)
}
