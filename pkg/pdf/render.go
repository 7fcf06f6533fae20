// Package pdf provides PDF page rendering on top of MuPDF.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrPageOutOfRange is returned when a requested page number is below 1
// or beyond the document's page count.
var ErrPageOutOfRange = errors.New("page number out of range")

// RenderOptions contains options for rendering PDF pages
type RenderOptions struct {
	DPI         float64 // Resolution in DPI (default 150)
	Zoom        float64 // Scale factor against the 72 DPI baseline; ignored when DPI is set
	Format      string  // Output format: png, jpeg, tiff
	Gray        bool    // Render in grayscale
	JPEGQuality int     // JPEG quality (1-100, default 85)
	ScaleTo     int     // Scale longest side to specified pixels
	ScaleToX    int     // Scale width to specified pixels
	ScaleToY    int     // Scale height to specified pixels
}

// PageRenderer renders PDF pages to encoded images
type PageRenderer struct {
	doc     *Document
	options RenderOptions
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer(doc *Document, options RenderOptions) *PageRenderer {
	if options.DPI == 0 {
		if options.Zoom > 0 {
			options.DPI = options.Zoom * 72
		} else {
			options.DPI = 150
		}
	}
	if options.Format == "" {
		options.Format = "png"
	}
	if options.JPEGQuality == 0 {
		options.JPEGQuality = 85
	}
	return &PageRenderer{
		doc:     doc,
		options: options,
	}
}

// RenderedPage represents a rendered page
type RenderedPage struct {
	PageNum int
	Width   int
	Height  int
	Data    []byte
	Format  string
}

// RenderPage renders a single page. pageNum is 1-based and is bounds-checked
// before indexing into the document.
func (r *PageRenderer) RenderPage(pageNum int) (*RenderedPage, error) {
	if pageNum < 1 || pageNum > r.doc.NumPages() {
		return nil, fmt.Errorf("page %d: %w (document has %d pages)",
			pageNum, ErrPageOutOfRange, r.doc.NumPages())
	}

	// MuPDF uses 0-based page indexes
	img, err := r.doc.fz.ImageDPI(pageNum-1, r.options.DPI)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageNum, err)
	}

	var out image.Image = img
	if r.options.Gray {
		out = toGray(out)
	}
	if w, h, ok := r.scaledSize(out.Bounds()); ok {
		out = rescale(out, w, h)
	}

	data, err := encode(out, r.options.Format, r.options.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page %d: %w", pageNum, err)
	}

	bounds := out.Bounds()
	return &RenderedPage{
		PageNum: pageNum,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Data:    data,
		Format:  r.options.Format,
	}, nil
}

// RenderPages renders an inclusive range of pages
func (r *PageRenderer) RenderPages(firstPage, lastPage int) ([]*RenderedPage, error) {
	var pages []*RenderedPage
	for pageNum := firstPage; pageNum <= lastPage; pageNum++ {
		rendered, err := r.RenderPage(pageNum)
		if err != nil {
			return nil, err
		}
		pages = append(pages, rendered)
	}
	return pages, nil
}

// scaledSize returns the target pixel size implied by the scale options,
// preserving aspect ratio when only one axis is pinned.
func (r *PageRenderer) scaledSize(bounds image.Rectangle) (int, int, bool) {
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return 0, 0, false
	}

	switch {
	case r.options.ScaleTo > 0:
		size := r.options.ScaleTo
		if w >= h {
			return size, h * size / w, true
		}
		return w * size / h, size, true
	case r.options.ScaleToX > 0 && r.options.ScaleToY > 0:
		return r.options.ScaleToX, r.options.ScaleToY, true
	case r.options.ScaleToX > 0:
		return r.options.ScaleToX, h * r.options.ScaleToX / w, true
	case r.options.ScaleToY > 0:
		return w * r.options.ScaleToY / h, r.options.ScaleToY, true
	}
	return 0, 0, false
}

func toGray(src image.Image) *image.Gray {
	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)
	return gray
}

func rescale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func encode(img image.Image, format string, jpegQuality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, err
		}
	case "tiff", "tif":
		opts := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
		if err := tiff.Encode(&buf, img, opts); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return buf.Bytes(), nil
}

// Ext returns the file extension for an output format
func Ext(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "jpg"
	case "tiff", "tif":
		return "tif"
	default:
		return "png"
	}
}
