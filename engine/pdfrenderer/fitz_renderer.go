package pdfrenderer

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// fitzDocument is the part of *fitz.Document the renderer relies on
type fitzDocument interface {
	NumPage() int
	ImageDPI(pageNumber int, dpi float64) (*image.RGBA, error)
	Close() error
}

var openFitzDocument = func(filename string) (fitzDocument, error) {
	return fitz.New(filename)
}

// FitzRenderer implements PDF rendering using go-fitz (requires CGo and MuPDF)
type FitzRenderer struct {
}

// NewFitzRenderer creates a new Fitz-based PDF renderer
func NewFitzRenderer() (*FitzRenderer, error) {
	return &FitzRenderer{}, nil
}

// RenderPages renders all pages of a PDF file using go-fitz
func (r *FitzRenderer) RenderPages(ctx context.Context, filename string, dpi float64, fn PageFunc) (int, error) {
	doc, err := openFitzDocument(filename)
	if err != nil {
		return 0, fmt.Errorf("unable to open PDF document: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages == 0 {
		return 0, ErrNoPages
	}

	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return pageNum, err
		}
		img, err := doc.ImageDPI(pageNum, dpi)
		if err != nil {
			return pageNum, fmt.Errorf("unable to render page %d: %w", pageNum+1, err)
		}
		if err := fn(pageNum, img); err != nil {
			return pageNum, err
		}
	}

	return numPages, nil
}

// Close cleans up resources (no-op for Fitz renderer as doc is closed per-render)
func (r *FitzRenderer) Close() error {
	return nil
}
