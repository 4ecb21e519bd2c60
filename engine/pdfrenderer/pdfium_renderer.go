package pdfrenderer

import (
	"context"
	"fmt"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

// instanceTimeout is how long a render waits for a free PDFium instance
const instanceTimeout = 30 * time.Second

// PDFiumRenderer implements PDF rendering using go-pdfium with WebAssembly (pure Go, no CGo)
type PDFiumRenderer struct {
	pool pdfium.Pool
}

// NewPDFiumRenderer creates a new PDFium-based PDF renderer using WebAssembly.
// workers is the number of instances, and so the number of concurrent renders.
func NewPDFiumRenderer(workers int) (*PDFiumRenderer, error) {
	if workers <= 0 {
		workers = 1
	}
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  workers,
		MaxTotal: workers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PDFium WebAssembly: %w", err)
	}

	return &PDFiumRenderer{pool: pool}, nil
}

// RenderPages renders all pages of a PDF file using go-pdfium WebAssembly.
// PDFium instances are not safe for concurrent use, so each call checks one out of the pool.
func (r *PDFiumRenderer) RenderPages(ctx context.Context, filename string, dpi float64, fn PageFunc) (int, error) {
	instance, err := r.pool.GetInstance(instanceTimeout)
	if err != nil {
		return 0, fmt.Errorf("failed to get PDFium instance: %w", err)
	}
	defer instance.Close()

	doc, err := instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filename,
	})
	if err != nil {
		return 0, fmt.Errorf("unable to open PDF document: %w", err)
	}
	defer instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCountResp, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return 0, fmt.Errorf("unable to get page count: %w", err)
	}

	numPages := pageCountResp.PageCount
	if numPages == 0 {
		return 0, ErrNoPages
	}

	for pageIndex := 0; pageIndex < numPages; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return pageIndex, err
		}
		pageRender, err := instance.RenderPageInDPI(&requests.RenderPageInDPI{
			DPI: int(dpi),
			Page: requests.Page{
				ByIndex: &requests.PageByIndex{
					Document: doc.Document,
					Index:    pageIndex,
				},
			},
		})
		if err != nil {
			return pageIndex, fmt.Errorf("unable to render page %d: %w", pageIndex+1, err)
		}

		// The image is backed by WebAssembly memory until Cleanup
		err = fn(pageIndex, pageRender.Result.Image)
		pageRender.Cleanup()
		if err != nil {
			return pageIndex, err
		}
	}

	return numPages, nil
}

// Close cleans up resources used by the PDFium renderer
func (r *PDFiumRenderer) Close() error {
	if r.pool != nil {
		err := r.pool.Close()
		r.pool = nil
		return err
	}
	return nil
}
