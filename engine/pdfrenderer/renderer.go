package pdfrenderer

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// ErrNoPages is returned when a document opens but has nothing to render
var ErrNoPages = errors.New("pdf has no pages")

// PageFunc receives each rendered page in order. pageIndex is 0-based.
// The image is only valid for the duration of the call.
type PageFunc func(pageIndex int, img image.Image) error

// Renderer defines the interface for PDF to image conversion
type Renderer interface {
	// RenderPages renders every page of a PDF file at the given resolution
	// and hands them to fn in page order. It returns the number of pages
	// rendered. Rendering stops at the first error, from the backend or fn.
	RenderPages(ctx context.Context, filename string, dpi float64, fn PageFunc) (int, error)

	// Close cleans up any resources used by the renderer
	Close() error
}

// Options configures a renderer backend
type Options struct {
	// Workers bounds how many documents can be rendered at the same time.
	// Only the pdfium backend pools instances, fitz opens a document per call.
	Workers int
}

// NewRenderer creates the renderer backend selected by name
func NewRenderer(backend string, opts Options) (Renderer, error) {
	switch backend {
	case "pdfium", "":
		return NewPDFiumRenderer(opts.Workers)
	case "fitz":
		return NewFitzRenderer()
	default:
		return nil, fmt.Errorf("unknown renderer backend %q", backend)
	}
}
