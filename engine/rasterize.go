package engine

import (
	"context"
	"image"

	"github.com/drummonds/pdf2jpg/database"
	"github.com/drummonds/pdf2jpg/engine/pdfrenderer"
)

// Rasterizer renders staged PDFs into per-page JPEG artifacts
type Rasterizer struct {
	Renderer pdfrenderer.Renderer
	Store    *ArtifactStore
	DPI      float64
	Quality  int
}

// Rasterize renders every page of the PDF at stagingPath and returns the
// download links in page order. A failure on any page fails the whole job
// and removes the pages already written for it.
func (r *Rasterizer) Rasterize(ctx context.Context, stagingPath, jobID string) ([]string, error) {
	var written []string

	_, err := r.Renderer.RenderPages(ctx, stagingPath, r.DPI, func(pageIndex int, img image.Image) error {
		name := database.PageFilename(jobID, pageIndex+1)
		if err := r.Store.SaveJPEG(name, img, r.Quality); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	})
	if err != nil {
		Logger.Error("Rasterization failed", "jobID", jobID, "pagesWritten", len(written), "error", err)
		r.Store.Remove(written...)
		return nil, &ConversionError{Err: err}
	}

	links := make([]string, 0, len(written))
	for _, name := range written {
		links = append(links, database.DownloadLink(name))
	}
	Logger.Info("Rasterized PDF", "jobID", jobID, "pages", len(links), "dpi", r.DPI)
	return links, nil
}
