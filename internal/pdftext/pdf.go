package pdftext

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads the text layer of a PDF in-process.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// Extract pulls plain text from every page and joins the pages with "\n".
// Any failure to read the document surfaces as *ExtractionError.
func (e *PDFExtractor) Extract(ctx context.Context, r io.ReaderAt, size int64) (res Result, err error) {
	start := time.Now()

	// The pdf package panics on some malformed documents; fold those into
	// the same error the caller already handles.
	defer func() {
		if p := recover(); p != nil {
			err = &ExtractionError{Cause: fmt.Errorf("pdf reader panic: %v", p)}
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		e.logger.Error("pdftext.open_failed", "error", err)
		return Result{}, &ExtractionError{Cause: err}
	}

	total := reader.NumPage()
	pages := make([]string, 0, total)
	var warnings []string
	for i := 1; i <= total; i++ {
		if ctx.Err() != nil {
			return Result{}, &ExtractionError{Cause: ctx.Err()}
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d: missing page object", i))
			pages = append(pages, "")
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			// A single unreadable page degrades the text, it does not
			// abort the document.
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, perr))
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	res = Result{
		Text:     strings.Join(pages, "\n"),
		Pages:    total,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warnings,
	}
	e.logger.Debug("pdftext.ok",
		"pages", res.Pages,
		"bytes", len(res.Text),
		"warnings", len(res.Warnings),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
