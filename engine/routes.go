package engine

import (
	"context"
	"net/http"

	"github.com/drummonds/pdf2jpg/config"
	"github.com/drummonds/pdf2jpg/database"
	"github.com/drummonds/pdf2jpg/engine/pdfrenderer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	DB           database.Repository
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	Staging      *StagingArea
	Artifacts    *ArtifactStore
	Rasterizer   *Rasterizer
	Fetcher      *Fetcher
}

// ConversionResult is returned by both conversion endpoints
type ConversionResult struct {
	FileID        string   `json:"file_id"`
	DownloadLinks []string `json:"download_links"`
}

// NewServerHandler runs the startup checks and wires the conversion pipeline
func NewServerHandler(serverConfig config.ServerConfig, db database.Repository, e *echo.Echo, renderer pdfrenderer.Renderer) (*ServerHandler, error) {
	serverHandler := &ServerHandler{DB: db, Echo: e, ServerConfig: serverConfig}
	if err := serverHandler.StartupChecks(); err != nil {
		return nil, err
	}

	staging, err := NewStagingArea(serverConfig.UploadDir)
	if err != nil {
		return nil, err
	}
	artifacts, err := NewArtifactStore(serverConfig.OutputDir)
	if err != nil {
		return nil, err
	}

	serverHandler.Staging = staging
	serverHandler.Artifacts = artifacts
	serverHandler.Rasterizer = &Rasterizer{
		Renderer: renderer,
		Store:    artifacts,
		DPI:      float64(serverConfig.RenderDPI),
		Quality:  serverConfig.JPEGQuality,
	}
	serverHandler.Fetcher = NewFetcher(serverConfig.FetchTimeout, serverConfig.FetchUserAgent)
	return serverHandler, nil
}

// convert stages the source, rasterizes it and keeps the registry up to date.
// Registry failures are logged but never fail the conversion itself.
func (serverHandler *ServerHandler) convert(ctx context.Context, source Source) (*ConversionResult, error) {
	jobID := uuid.NewString()
	kind, origin := source.Describe()

	job := &database.ConversionJob{ID: jobID, Source: kind, Origin: origin}
	if err := serverHandler.DB.CreateJob(job); err != nil {
		Logger.Error("Failed to register conversion", "jobID", jobID, "error", err)
	}

	stagingPath := serverHandler.Staging.Path(jobID)
	if err := source.Stage(ctx, stagingPath); err != nil {
		Logger.Warn("Unable to stage PDF", "jobID", jobID, "source", kind, "origin", origin, "error", err)
		serverHandler.failJob(jobID, err)
		return nil, err
	}

	links, err := serverHandler.Rasterizer.Rasterize(ctx, stagingPath, jobID)
	if err != nil {
		serverHandler.failJob(jobID, err)
		return nil, err
	}

	if err := serverHandler.DB.CompleteJob(jobID, len(links)); err != nil {
		Logger.Error("Failed to mark conversion complete", "jobID", jobID, "error", err)
	}
	return &ConversionResult{FileID: jobID, DownloadLinks: links}, nil
}

func (serverHandler *ServerHandler) failJob(jobID string, cause error) {
	if err := serverHandler.DB.FailJob(jobID, cause.Error()); err != nil {
		Logger.Error("Failed to mark conversion failed", "jobID", jobID, "error", err)
	}
}

// ConvertFile converts an uploaded PDF into one JPEG per page
// @Summary Convert an uploaded PDF
// @Description Upload a PDF and render every page to a JPEG. Also served at /convert/file.
// @Tags Convert
// @Accept multipart/form-data
// @Produce json
// @Param api_key formData string true "API key"
// @Param file formData file true "PDF document"
// @Success 200 {object} ConversionResult "Job id and ordered download links"
// @Failure 400 {object} errorDetail "File missing"
// @Failure 401 {object} errorDetail "Invalid API Key"
// @Failure 500 {object} errorDetail "Conversion failed"
// @Router /convert [post]
func (serverHandler *ServerHandler) ConvertFile(c echo.Context) error {
	if err := CheckAPIKey(serverHandler.ServerConfig.APIKey, c.FormValue("api_key")); err != nil {
		return err
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		Logger.Debug("Upload without file part", "error", err)
		return ErrMissingFile
	}

	result, err := serverHandler.convert(c.Request().Context(), &UploadSource{File: fileHeader})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ConvertURL fetches a remote PDF and converts it into one JPEG per page
// @Summary Convert a PDF from a URL
// @Description Fetch a PDF over HTTP(S) and render every page to a JPEG
// @Tags Convert
// @Accept x-www-form-urlencoded
// @Produce json
// @Param api_key formData string true "API key"
// @Param url formData string true "Location of the PDF"
// @Success 200 {object} ConversionResult "Job id and ordered download links"
// @Failure 400 {object} errorDetail "Failed to fetch PDF from URL"
// @Failure 401 {object} errorDetail "Invalid API Key"
// @Failure 500 {object} errorDetail "Conversion failed"
// @Router /convert/url [post]
func (serverHandler *ServerHandler) ConvertURL(c echo.Context) error {
	if err := CheckAPIKey(serverHandler.ServerConfig.APIKey, c.FormValue("api_key")); err != nil {
		return err
	}

	source := &URLSource{URL: c.FormValue("url"), Fetcher: serverHandler.Fetcher}
	result, err := serverHandler.convert(c.Request().Context(), source)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Download serves a generated page image
// @Summary Download a page image
// @Description Download one JPEG produced by a conversion
// @Tags Download
// @Produce image/jpeg
// @Param filename path string true "Image filename, e.g. {file_id}_page_1.jpg"
// @Success 200 {file} file "JPEG image"
// @Failure 404 {object} errorDetail "Image not found."
// @Router /download/{filename} [get]
func (serverHandler *ServerHandler) Download(c echo.Context) error {
	filename := c.Param("filename")
	path, err := serverHandler.Artifacts.Path(filename)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "image/jpeg")
	return c.Attachment(path, filename)
}

// GetHealth reports that the service is up
// @Summary Health check
// @Description Liveness probe
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /api/health [get]
func (serverHandler *ServerHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"renderer": serverHandler.ServerConfig.Renderer,
	})
}
