package pdf

import (
	"path/filepath"
	"testing"
)

// TestOpen tests opening a PDF file
func TestOpen(t *testing.T) {
	path := createTestPDF(t, 3)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open document: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 3 {
		t.Errorf("NumPages = %d, want 3", doc.NumPages())
	}
	if doc.Path() != path {
		t.Errorf("Path = %q, want %q", doc.Path(), path)
	}
}

// TestOpenMissing tests opening a path that does not exist
func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

// TestNewFromMemoryInvalid tests handling of invalid PDF data
func TestNewFromMemoryInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"not pdf", []byte("This is not a PDF file")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromMemory(tt.data)
			if err == nil {
				t.Error("Expected error for invalid PDF data")
			}
		})
	}
}

// TestCloseIdempotent tests that Close can be called more than once
func TestCloseIdempotent(t *testing.T) {
	doc, err := Open(createTestPDF(t, 1))
	if err != nil {
		t.Fatalf("Failed to open document: %v", err)
	}

	if err := doc.Close(); err != nil {
		t.Fatalf("First Close failed: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("Second Close failed: %v", err)
	}
}

// TestMetadata tests document metadata access
func TestMetadata(t *testing.T) {
	doc, err := Open(createTestPDF(t, 1))
	if err != nil {
		t.Fatalf("Failed to open document: %v", err)
	}
	defer doc.Close()

	meta := doc.Metadata()
	if meta == nil {
		t.Fatal("Metadata should not be nil")
	}
	if meta["title"] != "Test Document" {
		t.Errorf("title = %q, want %q", meta["title"], "Test Document")
	}
}
