// Package extract writes rasterized copies of selected PDF pages to disk.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/novvoo/go-pdfextract/pkg/pdf"
)

// Options controls page extraction.
type Options struct {
	Zoom     float64   // Render scale factor, 1.0 = 72 DPI (default 2.0)
	Format   string    // Output format: png (default), jpeg, tiff
	Gray     bool      // Render in grayscale
	Progress io.Writer // Progress output (default os.Stdout)
}

// OutputName returns the file name for an extracted page. The name depends
// only on the page number and format, never on processing order.
func OutputName(pageNum int, format string) string {
	return fmt.Sprintf("page-%d-actual.%s", pageNum, pdf.Ext(format))
}

// Pages extracts the given 1-based page numbers from the PDF at pdfPath and
// writes one image per page into outputDir.
//
// Pages are processed strictly in the given order with no deduplication;
// duplicate page numbers overwrite the same output file. The first failure
// aborts the run and is returned as-is; output already written stays on
// disk. The document handle is released on all exit paths.
func Pages(pdfPath string, pageNumbers []int, outputDir string, opts Options) error {
	if opts.Zoom == 0 {
		opts.Zoom = 2.0
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Progress == nil {
		opts.Progress = os.Stdout
	}

	doc, err := pdf.Open(pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	renderer := pdf.NewPageRenderer(doc, pdf.RenderOptions{
		Zoom:   opts.Zoom,
		Format: opts.Format,
		Gray:   opts.Gray,
	})

	for _, pageNum := range pageNumbers {
		rendered, err := renderer.RenderPage(pageNum)
		if err != nil {
			return err
		}

		outputPath := filepath.Join(outputDir, OutputName(pageNum, opts.Format))
		if err := os.WriteFile(outputPath, rendered.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}

		fmt.Fprintf(opts.Progress, "Extracted page %d to %s\n", pageNum, outputPath)
	}

	fmt.Fprintln(opts.Progress, "Done")
	return nil
}
