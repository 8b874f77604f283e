// Copyright ETOS group, Aalto University, 2026. MIT license.

// Package pdftext extracts plain text from PDF files, page by page.
package pdftext

import (
	"fmt"

	"github.com/dslipak/pdf"
)

// Document is the extracted plain text of one PDF, one entry per page.
// Extraction is best effort: text ordering approximates reading order, and
// pages that cannot be decoded are present as empty strings.
type Document struct {
	Pages []string
}

// FirstPage returns the text of the first page, or "" for an empty document.
func (d Document) FirstPage() string {
	if len(d.Pages) == 0 {
		return ""
	}
	return d.Pages[0]
}

// Empty reports whether the document yielded no text at all.
func (d Document) Empty() bool {
	for _, p := range d.Pages {
		if p != "" {
			return false
		}
	}
	return true
}

// Extractor turns a PDF file into a Document. The production backend wraps
// dslipak/pdf; tests supply fakes.
type Extractor interface {
	// Extract reads the PDF at path and returns its per-page plain text.
	Extract(path string) (Document, error)
}

// FileExtractor extracts text with the dslipak/pdf reader.
type FileExtractor struct{}

// New returns the production extractor.
func New() FileExtractor {
	return FileExtractor{}
}

// Extract opens the PDF at path and extracts each page's plain text. A page
// that fails to decode becomes an empty string; only a file that cannot be
// opened at all is an error.
func (FileExtractor) Extract(path string) (Document, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening PDF %s: %w", path, err)
	}

	numPages := r.NumPage()
	doc := Document{Pages: make([]string, 0, numPages)}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		doc.Pages = append(doc.Pages, text)
	}

	return doc, nil
}
