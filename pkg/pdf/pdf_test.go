package pdf

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// createTestPDF writes an A4 PDF with the given number of pages into a
// temporary directory and returns its path.
func createTestPDF(t *testing.T, pages int) string {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Test Document", false)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.SetFont("Helvetica", "", 24)
		doc.Text(20, 30, fmt.Sprintf("Page %d", i))
	}

	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("Failed to create test PDF: %v", err)
	}
	return path
}
