package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Dim is a page size in PDF points (1/72 inch).
type Dim struct {
	Width  float64
	Height float64
}

// DocumentInfo holds document-level properties gathered without rendering.
type DocumentInfo struct {
	Path      string
	PageCount int
	PageDims  []Dim
	Title     string
	Author    string
	Subject   string
	Keywords  string
	Creator   string
	Producer  string
	Format    string
}

// Info probes a PDF file for its page count, page dimensions and document
// information dictionary. Page geometry comes from pdfcpu, the info
// dictionary from MuPDF.
func Info(path string) (*DocumentInfo, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	pageDims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dimensions: %w", err)
	}

	info := &DocumentInfo{
		Path:      path,
		PageCount: pageCount,
		PageDims:  make([]Dim, 0, len(pageDims)),
	}
	for _, dim := range pageDims {
		info.PageDims = append(info.PageDims, Dim{Width: dim.Width, Height: dim.Height})
	}

	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	meta := doc.Metadata()
	info.Title = meta["title"]
	info.Author = meta["author"]
	info.Subject = meta["subject"]
	info.Keywords = meta["keywords"]
	info.Creator = meta["creator"]
	info.Producer = meta["producer"]
	info.Format = meta["format"]

	return info, nil
}
