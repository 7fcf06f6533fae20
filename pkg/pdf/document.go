package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Document represents an open PDF document. All parsing and decoding is
// delegated to MuPDF; the Document only manages the handle lifecycle.
type Document struct {
	fz       *fitz.Document
	path     string
	numPages int
	closed   bool
}

// Open opens a PDF file
func Open(filename string) (*Document, error) {
	fz, err := fitz.New(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}

	return &Document{
		fz:       fz,
		path:     filename,
		numPages: fz.NumPage(),
	}, nil
}

// NewFromMemory creates a document from PDF data held in memory
func NewFromMemory(data []byte) (*Document, error) {
	fz, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	return &Document{
		fz:       fz,
		numPages: fz.NumPage(),
	}, nil
}

// NumPages returns the number of pages in the document
func (d *Document) NumPages() int {
	return d.numPages
}

// Path returns the file path the document was opened from, or "" for
// documents opened from memory.
func (d *Document) Path() string {
	return d.path
}

// Metadata returns the document information dictionary (title, author,
// creator, producer, format) as reported by MuPDF.
func (d *Document) Metadata() map[string]string {
	return d.fz.Metadata()
}

// Close releases the underlying document handle. Close is idempotent:
// the handle is released exactly once and later calls are no-ops.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.fz.Close()
}
